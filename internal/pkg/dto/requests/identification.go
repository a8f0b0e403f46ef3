package requests

type QRScan struct {
	QRData string `json:"qrData" validate:"required"`
}

type CardSearch struct {
	Query string `validate:"required,max=100"`
}

type QRCodeQuery struct {
	Size int `validate:"omitempty,min=64,max=1024"`
}
