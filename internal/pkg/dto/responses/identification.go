package responses

import "arogyanetra-service/internal/app/models"

type IdentifiedPatient struct {
	Method  string                `json:"method"`
	Patient *models.PatientRecord `json:"patient"`
}
