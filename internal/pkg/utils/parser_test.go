package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWTRoundTrip(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", 1)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)

	_, err = ParseJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateSessionJWT("session-1", "secret", -1)
	require.NoError(t, err)

	_, err = ParseJWT(token, "secret")
	assert.Error(t, err)
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"asthma", "diabetes"}, SplitCommaList(" asthma, ,diabetes ,"))
	assert.Equal(t, []string{}, SplitCommaList(""))
	assert.Equal(t, []string{}, SplitCommaList(" , , "))
}

func TestParseBearerToken(t *testing.T) {
	token, ok := ParseBearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = ParseBearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = ParseBearerToken("Bearer ")
	assert.False(t, ok)
}

func TestIsCardID(t *testing.T) {
	assert.True(t, IsCardID("AN-123456-7890"))
	assert.False(t, IsCardID("not-a-card"))
	assert.False(t, IsCardID("AN-12345-7890"))
	assert.False(t, IsCardID(" AN-123456-7890"))
}
