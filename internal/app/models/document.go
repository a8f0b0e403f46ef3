package models

import "time"

type Document struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileURL    string    `json:"fileUrl"`
	Category   string    `json:"category"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type StagingBatch struct {
	ID        string       `json:"id" bson:"_id"`
	UserID    string       `json:"user_id" bson:"userId"`
	Files     []StagedFile `json:"files" bson:"files"`
	CreatedAt time.Time    `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time    `json:"updated_at" bson:"updatedAt"`
}

type StagedFile struct {
	ID          string    `json:"id" bson:"id"`
	FileName    string    `json:"file_name" bson:"fileName"`
	ContentType string    `json:"content_type" bson:"contentType"`
	Size        int64     `json:"size" bson:"size"`
	ObjectKey   string    `json:"-" bson:"objectKey"`
	Category    string    `json:"category" bson:"category"`
	StagedAt    time.Time `json:"staged_at" bson:"stagedAt"`
}

// Uncategorized returns the names of staged files that still lack a category.
func (b *StagingBatch) Uncategorized() []string {
	missing := make([]string, 0)
	for _, file := range b.Files {
		if file.Category == "" {
			missing = append(missing, file.FileName)
		}
	}
	return missing
}

type ReportSummary struct {
	Summary     string      `json:"summary"`
	GeneratedAt string      `json:"generatedAt,omitempty"`
	Raw         interface{} `json:"raw,omitempty"`
}
