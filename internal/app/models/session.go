package models

import "time"

// Session is only ever replaced as a whole. The With* helpers return copies.
type Session struct {
	SessionID     string         `json:"session_id"`
	Token         string         `json:"token"`
	User          *UserProfile   `json:"user"`
	ViewedPatient *PatientRecord `json:"viewed_patient,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ExpiresAt     time.Time      `json:"expires_at"`
}

func (s *Session) UserID() string {
	if s.User == nil {
		return ""
	}
	return s.User.ID
}

func (s *Session) AccountType() string {
	if s.User == nil {
		return ""
	}
	return s.User.AccountType
}

func (s *Session) WithUser(user *UserProfile) *Session {
	next := *s
	next.User = user
	return &next
}

func (s *Session) WithViewedPatient(patient *PatientRecord) *Session {
	next := *s
	next.ViewedPatient = patient
	return &next
}
