package constvars

const (
	DocumentCategoryPrescription  = "prescription"
	DocumentCategoryMedicalReport = "medical_report"
	DocumentCategoryLabResult     = "lab_result"
	DocumentCategoryOther         = "other"
)

// File type toggles accepted by the staging endpoint.
const (
	FileTypeTogglePDF   = "pdf"
	FileTypeToggleImage = "image"
	FileTypeToggleDoc   = "doc"
)

const (
	DocumentViewGrouped = "grouped"
	DocumentViewGrid    = "grid"
	DocumentViewList    = "list"
)

const (
	DocumentSortByDate     = "date"
	DocumentSortByName     = "name"
	DocumentSortByType     = "type"
	DocumentSortByCategory = "category"
	SortOrderAsc           = "asc"
	SortOrderDesc          = "desc"
)

const (
	FormFieldFiles        = "files"
	FormFieldCategories   = "categories"
	FormFieldFileTypes    = "types"
	FormFieldIDDocument   = "idDocument"
	FormFieldFaceImage    = "faceImage"
	FormFieldPhoto        = "photo"
	FormFieldFrame        = "frame"
	FormFieldPassword     = "password"
	FormFieldConfirm      = "confirmPassword"
	BytesInMegabyte       = 1024 * 1024
	MultipartMemoryBuffer = 32 << 20
)
