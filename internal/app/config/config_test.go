package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("UPSTREAM_BASE_URL", "http://upstream.local/api")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	internalConfig, driverConfig, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", internalConfig.JWT.Secret)
	assert.Equal(t, "http://upstream.local/api", internalConfig.Upstream.BaseUrl)
	assert.Equal(t, 60, internalConfig.Upstream.FaceRecognitionTimeoutInSeconds)
	assert.Equal(t, 120, internalConfig.OTP.ExpiredTimeInSeconds)
	assert.Equal(t, 120, internalConfig.OTP.ResendCooldownInSeconds)
	assert.Equal(t, 3, internalConfig.Login.MaxFailedAttempts)
	assert.Equal(t, 30, internalConfig.Login.LockoutInSeconds)
	assert.Equal(t, 10, internalConfig.Upload.MaxFileSizeInMB)
	assert.Equal(t, 5, internalConfig.Upload.IDDocumentMaxSizeInMB)
	assert.Equal(t, 3, internalConfig.Identification.QRInvalidResetInSeconds)
	assert.Equal(t, "6379", driverConfig.Redis.Port)
	assert.Equal(t, "info", driverConfig.Logger.Level)
}

func TestLoad_EnvironmentOverridesAndFallbacks(t *testing.T) {
	setRequired(t)
	t.Setenv("LOGIN_LOCKOUT_IN_SECONDS", "45")
	t.Setenv("OTP_MAX_ATTEMPTS", "many")
	t.Setenv("UPLOAD_MAX_FILE_SIZE_IN_MB", "-2")
	t.Setenv("REDIS_HOST", "cache.internal")

	internalConfig, driverConfig, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45, internalConfig.Login.LockoutInSeconds)
	assert.Equal(t, 5, internalConfig.OTP.MaxAttempts, "unparsable value falls back to default")
	assert.Equal(t, 10, internalConfig.Upload.MaxFileSizeInMB, "non-positive value falls back to default")
	assert.Equal(t, "cache.internal", driverConfig.Redis.Host)
}

func TestLoad_RequiredValues(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("UPSTREAM_BASE_URL", "http://upstream.local")
		_, _, err := Load()
		assert.EqualError(t, err, "JWT_SECRET is required")
	})

	t.Run("missing upstream base url", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("UPSTREAM_BASE_URL", "")
		_, _, err := Load()
		assert.EqualError(t, err, "UPSTREAM_BASE_URL is required")
	})
}
