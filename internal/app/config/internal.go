package config

type InternalConfig struct {
	App            App         `mapstructure:"app"`
	JWT            AppJWT      `mapstructure:"jwt"`
	Upstream       AppUpstream `mapstructure:"upstream"`
	OTP            AppOTP      `mapstructure:"otp"`
	Login          AppLogin    `mapstructure:"login"`
	Upload         AppUpload   `mapstructure:"upload"`
	Staging        AppStaging  `mapstructure:"staging"`
	Identification AppIdentify `mapstructure:"identification"`
	Minio          AppMinio    `mapstructure:"minio"`
	RabbitMQ       AppRabbitMQ `mapstructure:"rabbitmq"`
	MongoDB        AppMongoDB  `mapstructure:"mongodb"`
}

type App struct {
	Env                           string `mapstructure:"env"`
	Port                          string `mapstructure:"port"`
	Version                       string `mapstructure:"version"`
	Timezone                      string `mapstructure:"timezone"`
	FrontendDomain                string `mapstructure:"frontend_domain"`
	EndpointPrefix                string `mapstructure:"endpoint_prefix"`
	MaxRequests                   int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds     int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds      int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte    int    `mapstructure:"request_body_limit_in_megabyte"`
	SessionExpiredTimeInHours     int    `mapstructure:"session_expired_time_in_hours"`
	InFlightLockTimeoutInSeconds  int    `mapstructure:"inflight_lock_timeout_in_seconds"`
	CardIssueLockTimeoutInSeconds int    `mapstructure:"card_issue_lock_timeout_in_seconds"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppUpstream struct {
	BaseUrl                         string `mapstructure:"base_url"`
	RequestTimeoutInSeconds         int    `mapstructure:"request_timeout_in_seconds"`
	FaceRecognitionTimeoutInSeconds int    `mapstructure:"face_recognition_timeout_in_seconds"`
	DocumentUploadTimeoutInSeconds  int    `mapstructure:"document_upload_timeout_in_seconds"`
}

type AppOTP struct {
	ExpiredTimeInSeconds    int `mapstructure:"expired_time_in_seconds"`
	ResendCooldownInSeconds int `mapstructure:"resend_cooldown_in_seconds"`
	MaxAttempts             int `mapstructure:"max_attempts"`
	DraftExpiredTimeInHours int `mapstructure:"draft_expired_time_in_hours"`
}

type AppLogin struct {
	MaxFailedAttempts int `mapstructure:"max_failed_attempts"`
	LockoutInSeconds  int `mapstructure:"lockout_in_seconds"`
}

type AppUpload struct {
	MaxFileSizeInMB       int `mapstructure:"max_file_size_in_mb"`
	IDDocumentMaxSizeInMB int `mapstructure:"id_document_max_size_in_mb"`
	FaceImageMaxSizeInMB  int `mapstructure:"face_image_max_size_in_mb"`
}

type AppStaging struct {
	ExpiredTimeInHours int    `mapstructure:"expired_time_in_hours"`
	CleanupCronSpec    string `mapstructure:"cleanup_cron_spec"`
}

type AppIdentify struct {
	QRInvalidResetInSeconds   int `mapstructure:"qr_invalid_reset_in_seconds"`
	FaceScanRequestsPerMinute int `mapstructure:"face_scan_requests_per_minute"`
	FaceScanBurst             int `mapstructure:"face_scan_burst"`
}

type AppMinio struct {
	StagingBucketName               string `mapstructure:"staging_bucket_name"`
	CardBucketName                  string `mapstructure:"card_bucket_name"`
	PreSignedUrlExpiryTimeInMinutes int    `mapstructure:"pre_signed_url_expiry_time_in_minutes"`
}

type AppRabbitMQ struct {
	AuditQueue string `mapstructure:"audit_queue"`
}

type AppMongoDB struct {
	StagingCollection string `mapstructure:"staging_collection"`
}
