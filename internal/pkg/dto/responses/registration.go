package responses

import "arogyanetra-service/internal/app/models"

type SignupDraft struct {
	DraftID           string `json:"draft_id"`
	State             string `json:"state"`
	ContactType       string `json:"contact_type"`
	ResendAvailableIn int    `json:"resend_available_in"`
	ExpiresIn         int    `json:"expires_in"`
	NextRoute         string `json:"next_route,omitempty"`
}

type CompleteSignup struct {
	User      *models.UserProfile `json:"user,omitempty"`
	NextRoute string              `json:"next_route"`
}
