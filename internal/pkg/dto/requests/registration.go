package requests

type RegisterIdentity struct {
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	MobileNo    string `json:"mobile_no" validate:"required,mobile_no"`
	Email       string `json:"email" validate:"required,email"`
	ContactType string `json:"contactType" validate:"required,contact_type"`
	UserType    string `json:"userType" validate:"required,account_type"`
}

type VerifyOTP struct {
	DraftID string `json:"-" validate:"required,uuid"`
	OTP     string `json:"otp" validate:"required,min=4,max=8"`
}

type CompleteSignup struct {
	DraftID         string        `validate:"required,uuid"`
	IDDocument      *UploadedFile `validate:"required"`
	FaceImage       *UploadedFile `validate:"required"`
	Password        string        `validate:"required"`
	ConfirmPassword string        `validate:"required"`
}
