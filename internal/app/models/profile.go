package models

import "time"

const (
	WizardModeModal = "modal"
	WizardModePage  = "page"

	WizardFirstStep = 1
	WizardLastStep  = 3
)

// ProfileForm mirrors the form the browser fills across the three steps.
// Conditions, allergies and medications are comma separated free text.
type ProfileForm struct {
	Gender            string           `json:"gender"`
	DateOfBirth       string           `json:"dateOfBirth"`
	BloodGroup        string           `json:"bloodGroup"`
	Height            float64          `json:"height,omitempty"`
	Weight            float64          `json:"weight,omitempty"`
	Address           Address          `json:"address"`
	EmergencyContact  EmergencyContact `json:"emergencyContact"`
	MedicalConditions string           `json:"medicalConditions"`
	Allergies         string           `json:"allergies"`
	Medications       string           `json:"medications"`
}

type ProfileWizard struct {
	Step      int         `json:"step"`
	Mode      string      `json:"mode"`
	Form      ProfileForm `json:"form"`
	StartedAt time.Time   `json:"started_at"`
}
