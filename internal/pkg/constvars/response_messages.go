package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
	ResponseHealthy = "service is healthy"

	// Auth messages
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"
	GetMeSuccessMessage  = "get profile successfully"

	// Registration messages
	RegisterIdentitySuccessMessage = "verification code sent"
	RegisterStatusSuccessMessage   = "get registration status successfully"
	ResendOTPSuccessMessage        = "verification code resent"
	VerifyOTPSuccessMessage        = "verification code accepted"
	CompleteSignupSuccessMessage   = "account created successfully"
	AbandonSignupSuccessMessage    = "registration discarded"

	// Profile messages
	GetWizardSuccessMessage     = "get profile wizard successfully"
	SaveStepSuccessMessage      = "step saved"
	StepBackSuccessMessage      = "moved to previous step"
	SubmitProfileSuccessMessage = "profile completed successfully"

	// Document messages
	StageFilesSuccessMessage     = "files added to upload list"
	ListStagedSuccessMessage     = "get upload list successfully"
	AssignCategorySuccessMessage = "category assigned"
	RemoveStagedSuccessMessage   = "file removed from upload list"
	CommitUploadSuccessMessage   = "documents uploaded successfully"
	UploadProgressSuccessMessage = "get upload progress successfully"
	ListDocumentsSuccessMessage  = "get documents successfully"
	SummarySuccessMessage        = "get report summary successfully"

	// Card messages
	GetCardSuccessMessage    = "get card successfully"
	ExportCardSuccessMessage = "card exported successfully"

	// Identification messages
	IdentifyPatientSuccessMessage = "patient identified successfully"
	CurrentPatientSuccessMessage  = "get current patient successfully"
	ClearPatientSuccessMessage    = "patient cleared"
)
