package config

import (
	"arogyanetra-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type setting struct {
	key          string
	env          string
	defaultValue interface{}
}

var settings = []setting{
	{"app.env", "APP_ENV", "development"},
	{"app.port", "APP_PORT", "8080"},
	{"app.version", "APP_VERSION", "v1"},
	{"app.timezone", "APP_TIMEZONE", "Asia/Kolkata"},
	{"app.frontend_domain", "APP_FRONTEND_DOMAIN", "http://localhost:3000"},
	{"app.endpoint_prefix", "APP_ENDPOINT_PREFIX", "api"},
	{"app.max_requests", "APP_MAX_REQUESTS", 100},
	{"app.max_time_requests_per_seconds", "APP_MAX_TIME_REQUESTS_PER_SECONDS", 60},
	{"app.shutdown_timeout_in_seconds", "APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10},
	{"app.request_body_limit_in_megabyte", "APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 64},
	{"app.session_expired_time_in_hours", "APP_SESSION_EXPIRED_TIME_IN_HOURS", 24},
	{"app.inflight_lock_timeout_in_seconds", "APP_INFLIGHT_LOCK_TIMEOUT_IN_SECONDS", 90},
	{"app.card_issue_lock_timeout_in_seconds", "APP_CARD_ISSUE_LOCK_TIMEOUT_IN_SECONDS", 30},

	{"jwt.secret", "JWT_SECRET", ""},
	{"jwt.exp_time_in_hour", "JWT_EXP_TIME_IN_HOUR", 24},

	{"upstream.base_url", "UPSTREAM_BASE_URL", ""},
	{"upstream.request_timeout_in_seconds", "UPSTREAM_REQUEST_TIMEOUT_IN_SECONDS", 30},
	{"upstream.face_recognition_timeout_in_seconds", "UPSTREAM_FACE_RECOGNITION_TIMEOUT_IN_SECONDS", 60},
	{"upstream.document_upload_timeout_in_seconds", "UPSTREAM_DOCUMENT_UPLOAD_TIMEOUT_IN_SECONDS", 120},

	{"otp.expired_time_in_seconds", "OTP_EXPIRED_TIME_IN_SECONDS", 120},
	{"otp.resend_cooldown_in_seconds", "OTP_RESEND_COOLDOWN_IN_SECONDS", 120},
	{"otp.max_attempts", "OTP_MAX_ATTEMPTS", 5},
	{"otp.draft_expired_time_in_hours", "OTP_DRAFT_EXPIRED_TIME_IN_HOURS", 24},

	{"login.max_failed_attempts", "LOGIN_MAX_FAILED_ATTEMPTS", 3},
	{"login.lockout_in_seconds", "LOGIN_LOCKOUT_IN_SECONDS", 30},

	{"upload.max_file_size_in_mb", "UPLOAD_MAX_FILE_SIZE_IN_MB", 10},
	{"upload.id_document_max_size_in_mb", "ID_DOCUMENT_MAX_SIZE_IN_MB", 5},
	{"upload.face_image_max_size_in_mb", "FACE_IMAGE_MAX_SIZE_IN_MB", 5},

	{"staging.expired_time_in_hours", "STAGING_EXPIRED_TIME_IN_HOURS", 24},
	{"staging.cleanup_cron_spec", "STAGING_CLEANUP_CRON_SPEC", "@hourly"},

	{"identification.qr_invalid_reset_in_seconds", "QR_INVALID_RESET_IN_SECONDS", 3},
	{"identification.face_scan_requests_per_minute", "FACE_SCAN_REQUESTS_PER_MINUTE", 12},
	{"identification.face_scan_burst", "FACE_SCAN_BURST", 3},

	{"minio.staging_bucket_name", "MINIO_STAGING_BUCKET_NAME", "arogyanetra-staging"},
	{"minio.card_bucket_name", "MINIO_CARD_BUCKET_NAME", "arogyanetra-cards"},
	{"minio.pre_signed_url_expiry_time_in_minutes", "MINIO_PRE_SIGNED_URL_EXPIRY_TIME_IN_MINUTES", 15},
	{"minio.host", "MINIO_HOST", "localhost"},
	{"minio.port", "MINIO_PORT", "9000"},
	{"minio.username", "MINIO_USERNAME", "minioadmin"},
	{"minio.password", "MINIO_PASSWORD", "minioadmin"},
	{"minio.use_ssl", "MINIO_USE_SSL", false},

	{"rabbitmq.audit_queue", "RABBITMQ_AUDIT_QUEUE", "arogyanetra.audit"},
	{"rabbitmq.host", "RABBITMQ_HOST", "localhost"},
	{"rabbitmq.port", "RABBITMQ_PORT", "5672"},
	{"rabbitmq.username", "RABBITMQ_USERNAME", "guest"},
	{"rabbitmq.password", "RABBITMQ_PASSWORD", "guest"},

	{"mongodb.staging_collection", "MONGODB_STAGING_COLLECTION", "staging_batches"},
	{"mongodb.host", "MONGODB_HOST", "localhost"},
	{"mongodb.port", "MONGODB_PORT", "27017"},
	{"mongodb.username", "MONGODB_USERNAME", ""},
	{"mongodb.password", "MONGODB_PASSWORD", ""},
	{"mongodb.db_name", "MONGODB_DB_NAME", "arogyanetra"},

	{"redis.host", "REDIS_HOST", "localhost"},
	{"redis.port", "REDIS_PORT", "6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},

	{"logger.level", "LOGGER_LEVEL", "info"},
	{"logger.output_filename", "LOGGER_OUTPUT_FILENAME", "logger.log"},
	{"logger.output_error_filename", "LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"},
}

// Load reads the process environment, then .env, then defaults. Numeric
// values that do not parse, or that must be positive and are not, fall
// back to their default with a warning.
func Load() (*InternalConfig, *DriverConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for _, s := range settings {
		v.SetDefault(s.key, s.defaultValue)
		v.BindEnv(s.key, s.env)
	}

	for _, s := range settings {
		defaultInt, ok := s.defaultValue.(int)
		if !ok {
			continue
		}
		value, err := strconv.Atoi(v.GetString(s.key))
		if err == nil && value <= 0 && defaultInt > 0 {
			err = fmt.Errorf("must be positive, got %d", value)
		}
		if err != nil {
			log.Printf(constvars.ErrEnvParsing, s.env, err)
			v.Set(s.key, defaultInt)
		}
	}

	internalConfig := &InternalConfig{}
	if err := v.Unmarshal(internalConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal internal config: %w", err)
	}

	driverConfig := &DriverConfig{}
	if err := v.Unmarshal(driverConfig); err != nil {
		return nil, nil, fmt.Errorf("unmarshal driver config: %w", err)
	}

	if internalConfig.JWT.Secret == "" {
		return nil, nil, errors.New("JWT_SECRET is required")
	}
	if internalConfig.Upstream.BaseUrl == "" {
		return nil, nil, errors.New("UPSTREAM_BASE_URL is required")
	}

	return internalConfig, driverConfig, nil
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}
