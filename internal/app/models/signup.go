package models

import "time"

const (
	SignupStateCollectingIdentity = "CollectingIdentity"
	SignupStateAwaitingOtp        = "AwaitingOtp"
	SignupStateOtpVerified        = "OtpVerified"
)

type SignupDraft struct {
	DraftID     string    `json:"draft_id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	MobileNo    string    `json:"mobile_no"`
	Email       string    `json:"email"`
	ContactType string    `json:"contactType"`
	UserType    string    `json:"userType"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactValue is the address the one-time code goes to.
func (d *SignupDraft) ContactValue() string {
	if d.ContactType == "email" {
		return d.Email
	}
	return d.MobileNo
}

type OTPChallenge struct {
	ContactType       string    `json:"contact_type"`
	ContactValue      string    `json:"contact_value"`
	CodeHash          string    `json:"code_hash"`
	ExpiresAt         time.Time `json:"expires_at"`
	ResendAvailableAt time.Time `json:"resend_available_at"`
	Attempts          int       `json:"attempts"`
}

func (c *OTPChallenge) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
