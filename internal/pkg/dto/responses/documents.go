package responses

import "arogyanetra-service/internal/app/models"

type StagingList struct {
	Files             []models.StagedFile `json:"files"`
	MissingCategories []string            `json:"missing_categories"`
	Ready             bool                `json:"ready"`
}

type UploadProgress struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

type CommitUpload struct {
	Uploaded  int    `json:"uploaded"`
	NextRoute string `json:"next_route"`
}

type DocumentGroup struct {
	Category  string            `json:"category"`
	Documents []models.Document `json:"documents"`
}

type DocumentList struct {
	View      string            `json:"view"`
	Total     int               `json:"total"`
	Documents []models.Document `json:"documents,omitempty"`
	Groups    []DocumentGroup   `json:"groups,omitempty"`
}
