package requests

// SaveProfileStep carries whatever the browser sent for one wizard step.
// Only the fields belonging to that step are applied.
type SaveProfileStep struct {
	Gender            string                `json:"gender"`
	DateOfBirth       string                `json:"dateOfBirth"`
	BloodGroup        string                `json:"bloodGroup"`
	Height            float64               `json:"height"`
	Weight            float64               `json:"weight"`
	Address           *ProfileAddress       `json:"address"`
	EmergencyContact  *ProfileEmergencyInfo `json:"emergencyContact"`
	MedicalConditions string                `json:"medicalConditions"`
	Allergies         string                `json:"allergies"`
	Medications       string                `json:"medications"`
}

type ProfileAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode string `json:"pincode"`
	Country string `json:"country"`
}

type ProfileEmergencyInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// UpdateMedicalProfile is the JSON body upstream expects on submit.
type UpdateMedicalProfile struct {
	Gender            string               `json:"gender"`
	DateOfBirth       string               `json:"dateOfBirth"`
	BloodGroup        string               `json:"bloodGroup"`
	Height            float64              `json:"height,omitempty"`
	Weight            float64              `json:"weight,omitempty"`
	Address           ProfileAddress       `json:"address"`
	EmergencyContact  ProfileEmergencyInfo `json:"emergencyContact"`
	MedicalConditions []string             `json:"medicalConditions"`
	Allergies         []string             `json:"allergies"`
	Medications       []string             `json:"medications"`
	IsProfileComplete bool                 `json:"isProfileComplete"`
}
