package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "ARGN_SVC_"
)

const (
	AccountTypeUser   = "User"
	AccountTypeDoctor = "Doctor"
	AccountTypeAdmin  = "Admin"
)

const (
	ContactTypeEmail    = "email"
	ContactTypeSMS      = "sms"
	ContactTypeWhatsApp = "whatsapp"
)

// Browser routes handed back as next_route.
const (
	RouteLogin                 = "/login"
	RouteSignup                = "/signup"
	RouteSignupNext            = "/signup/next"
	RouteCompleteProfile       = "/complete-profile"
	RouteUserDashboard         = "/user-dashboard"
	RouteProfessionalDashboard = "/professional-dashboard"
	RouteUpload                = "/upload"
	RouteViewDocuments         = "/view-documents"
	RouteScanQR                = "/scan-qr"
	RouteMyProfile             = "/my-profile"
)

const (
	RedisKeySessionFormat        = "session:%s"
	RedisKeySignupDraftFormat    = "signup_draft:%s"
	RedisKeySignupOTPFormat      = "signup_otp:%s"
	RedisKeyProfileWizardFormat  = "profile_wizard:%s"
	RedisKeyUploadProgressFormat = "upload_progress:%s"
	RedisKeyCardIssueLockFormat  = "lock:card_issue:%s"
	RedisKeyInFlightLockFormat   = "lock:inflight:%s:%s"
	RedisKeyStagingCleanupLock   = "lock:staging_cleanup:leader"
	LoginLimiterGroupName        = "LOGIN_FAILURE"
)

const (
	CardIDPattern = `^AN-\d{6}-\d{4}$`
)

const (
	AuditEventUserRegistered    = "user.registered"
	AuditEventUserLoggedIn      = "user.logged_in"
	AuditEventProfileCompleted  = "profile.completed"
	AuditEventDocumentsUploaded = "document.uploaded"
	AuditEventCardIssued        = "card.issued"
	AuditEventPatientIdentified = "patient.identified"
)

const (
	IdentifyMethodFaceScan = "facescan"
	IdentifyMethodQRScan   = "qrscan"
	IdentifyMethodSearch   = "search"
)

const (
	UploadStatusIdle      = "idle"
	UploadStatusUploading = "uploading"
	UploadStatusCompleted = "completed"
	UploadStatusFailed    = "failed"
)
