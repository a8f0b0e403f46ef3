package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"uuid":         "must be a valid UUID",
	"required_if":  "is required when %s is %s",
	"mobile_no":    "must be a 10-digit mobile number",
	"card_id":      "must look like AN-######-####",
	"contact_type": "must be one of [email, sms, whatsapp]",
	"account_type": "must be one of [User, Doctor, Admin]",
	"date":         "must be a date in YYYY-MM-DD format",
	"month":        "must be a month in YYYY-MM format",
	"year":         "must be a year in YYYY format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"len":         true,
	"eqfield":     true,
	"gt":          true,
	"gte":         true,
	"lte":         true,
	"oneof":       true,
	"required_if": true,
}

// Tags whose message already reads as a full sentence
var TagsWithStandaloneMessage = map[string]bool{
	"mobile_no": true,
	"card_id":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientLoginLocked                   = "too many failed login attempts, please wait before trying again"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientUpstreamUnavailable           = "the health records service is unreachable, please try again"
	ErrClientUpstreamTimeout               = "the health records service took too long to respond, please try again"
	ErrClientRequestInFlight               = "this request is already being processed"
	ErrClientDraftNotFound                 = "registration not found, please start again"
	ErrClientDraftInvalidState             = "this registration step is not available yet"
	ErrClientOTPCooldown                   = "please wait before requesting a new code"
	ErrClientOTPExpired                    = "the verification code has expired, please request a new one"
	ErrClientOTPInvalid                    = "invalid verification code"
	ErrClientOTPMaxAttempts                = "too many wrong codes, please request a new one"
	ErrClientPasswordTooWeak               = "password is too weak"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientFileTooLarge                  = "file size exceeds the %dMB limit"
	ErrClientFileTypeNotAllowed            = "file type %s is not allowed"
	ErrClientFileRequired                  = "%s is required"
	ErrClientWizardNotStarted              = "profile completion has not been started"
	ErrClientWizardStepMismatch            = "please complete the current step first"
	ErrClientWizardNotOnLastStep           = "profile can only be submitted from the last step"
	ErrClientStagedFileNotFound            = "file not found in upload list"
	ErrClientStagingEmpty                  = "select at least one file to upload"
	ErrClientCategoriesMissing             = "assign a category to every file"
	ErrClientCardOnlyForUsers              = "only patient accounts have an ArogyaNetra card"
	ErrClientFaceRecognitionTimeout        = "face recognition timed out"
	ErrClientInvalidQRPayload              = "invalid QR code"
	ErrClientSearchByCardID                = "search by card ID"
	ErrClientUnknownIdentifyMethod         = "unknown identification method"
	ErrClientNoPatientSelected             = "no patient selected"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevHashOTP                  = "failed to hash OTP"

	// Validation messages
	ErrDevValidationFailed        = "validation failed"
	ErrDevURLParamValidation      = "parameter %s validation failed"
	ErrDevPasswordTooWeak         = "password strength %d is below the required %d"
	ErrDevPasswordsDoNotMatch     = "passwords do not match"
	ErrDevFileTooLarge            = "file %s has %d bytes which exceeds %d bytes"
	ErrDevFileTypeNotAllowed      = "file %s has content type %s which is not allowed"
	ErrDevFileRequired            = "multipart field %s missing"
	ErrDevUnknownIdentifyMethod   = "identify method %s is not registered"
	ErrDevInvalidQRPayload        = "qr payload does not carry a card id"
	ErrDevSearchByCardID          = "query %q does not match the card id pattern"
	ErrDevCategoriesMissing       = "%d staged files have no category"
	ErrDevStagingEmpty            = "staging batch has no files"
	ErrDevStagedFileNotFound      = "staged file %s not found"
	ErrDevWizardNotStarted        = "wizard state not found"
	ErrDevWizardStepMismatch      = "wizard is on step %d but step %d was submitted"
	ErrDevWizardNotOnLastStep     = "wizard is on step %d"
	ErrDevCardOnlyForUsers        = "account type %s has no card"
	ErrDevNoPatientSelected       = "session has no viewed patient"
	ErrDevFaceRecognitionDeadline = "face recognition exceeded its deadline"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthSessionNotFound       = "session not found"
	ErrDevAuthPermissionDenied      = "permission denied for %s %s as %s"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidCredentials    = "upstream rejected credentials"
	ErrDevAuthLoginLocked           = "login locked for %d more seconds"

	// Registration messages
	ErrDevDraftNotFound     = "signup draft %s not found"
	ErrDevDraftInvalidState = "signup draft is in state %s, expected %s"
	ErrDevOTPCooldown       = "otp resend available in %d seconds"
	ErrDevOTPExpired        = "otp challenge expired or missing"
	ErrDevOTPInvalid        = "otp mismatch"
	ErrDevOTPMaxAttempts    = "otp attempts exhausted"

	// Upstream messages
	ErrDevUpstreamCreateRequest     = "failed to create upstream request to %s"
	ErrDevUpstreamUnavailable       = "failed to reach upstream %s"
	ErrDevUpstreamTimeout           = "upstream %s exceeded its deadline"
	ErrDevUpstreamUnauthorized      = "upstream %s returned %d, session destroyed"
	ErrDevUpstreamBusinessFailure   = "upstream %s reported failure"
	ErrDevUpstreamMalformedResponse = "upstream %s returned a malformed response"

	// Database messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "failed to update document into database"
	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument = "failed when do delete document on database"
	ErrDevDBFailedToCreateIndex    = "failed to create index on collection %s"

	// Minio messages
	ErrDevMinioFailedToCreateObject          = "failed to create object into minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObject             = "failed to get object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToRemoveObject          = "failed to remove object from minio storage with bucket name '%s'"
	ErrDevMinioFailedToGetObjectPresignedURL = "failed to get object URL from minio storage with bucket name '%s'"
	ErrDevMinioFailedToCreateBucket          = "failed to create bucket '%s'"

	// Redis messages
	ErrDevRedisSetData        = "failed to SET data into redis"
	ErrDevRedisGetData        = "failed to GET data from redis"
	ErrDevRedisDeleteData     = "failed to DELETE data from redis"
	ErrDevRedisIncrementValue = "failed to INCR data in redis"
	ErrDevRedisLock           = "failed to acquire lock %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"

	// Image messages
	ErrDevImageEncode = "failed to encode %s image"
	ErrDevImageDecode = "failed to decode image"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerParseSessionData = "failed to parse session data"
	ErrDevRequestInFlight        = "request %s is already in flight"
	ErrDevRequestLimitExceeded   = "request limit exceeded"
)

const (
	ErrEnvParsing     = "Error parsing %s: %v, will use default value"
	ErrEnvKeyNotExist = "Error getting env key: %s, will use default value"
)
