package models

import "github.com/goccy/go-json"

// PatientRecord is the identified patient as upstream returned it.
type PatientRecord struct {
	UserProfile
	Raw json.RawMessage `json:"raw,omitempty"`
}
