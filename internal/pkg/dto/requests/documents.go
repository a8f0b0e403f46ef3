package requests

type StageFiles struct {
	UserID       string         `validate:"required"`
	Files        []UploadedFile `validate:"required,min=1"`
	Categories   []string       `validate:"dive,omitempty,oneof=prescription medical_report lab_result other"`
	EnabledTypes []string       `validate:"dive,oneof=pdf image doc"`
}

type AssignCategory struct {
	FileID   string `json:"-" validate:"required,uuid"`
	Category string `json:"category" validate:"required,oneof=prescription medical_report lab_result other"`
}

type DocumentQuery struct {
	Name     string `validate:"omitempty,max=100"`
	Type     string `validate:"omitempty,max=100"`
	Category string `validate:"omitempty,oneof=prescription medical_report lab_result other"`
	Date     string `validate:"omitempty,date"`
	Month    string `validate:"omitempty,month"`
	Year     string `validate:"omitempty,year"`
	SortBy   string `validate:"omitempty,oneof=date name type category"`
	Order    string `validate:"omitempty,oneof=asc desc"`
	View     string `validate:"omitempty,oneof=grouped grid list"`
}
