package responses

import "arogyanetra-service/internal/app/models"

type ProfileWizard struct {
	Step       int                `json:"step"`
	TotalSteps int                `json:"total_steps"`
	Mode       string             `json:"mode"`
	Form       models.ProfileForm `json:"form"`
	CanGoBack  bool               `json:"can_go_back"`
	CanSubmit  bool               `json:"can_submit"`
}

type SubmitProfile struct {
	User      *models.UserProfile `json:"user"`
	NextRoute string              `json:"next_route,omitempty"`
}
