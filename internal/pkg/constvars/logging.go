package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingSessionIDKey         = "session_id"
	LoggingUserIDKey            = "user_id"
	LoggingDraftIDKey           = "draft_id"
	LoggingStateKey             = "state"
	LoggingStepKey              = "step"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingQueueNameKey         = "queue_name"
	LoggingRedisKey             = "redis_key"
	LoggingLockValueKey         = "lock_value"
	LoggingLockExpirationKey    = "lock_expiration"
	LoggingBucketNameKey        = "bucket_name"
	LoggingObjectKey            = "object_key"
	LoggingUpstreamPathKey      = "upstream_path"
	LoggingIdentifyMethodKey    = "identify_method"
	LoggingFileCountKey         = "file_count"
	LoggingCardIDKey            = "card_id"
	LoggingRetryAfterSecondsKey = "retry_after_seconds"
)
