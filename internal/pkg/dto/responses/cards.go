package responses

type Card struct {
	CardID    string    `json:"card_id"`
	IssueDate string    `json:"issue_date"`
	Status    string    `json:"status,omitempty"`
	Holder    string    `json:"holder"`
	QRPayload QRPayload `json:"qr_payload"`
}

type QRPayload struct {
	CardID    string `json:"cardId"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	IssueDate string `json:"issueDate"`
	Timestamp int64  `json:"timestamp"`
}

type CardExport struct {
	URL              string `json:"url"`
	ExpiresInMinutes int    `json:"expires_in_minutes"`
}
