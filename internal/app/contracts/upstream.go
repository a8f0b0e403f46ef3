package contracts

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/dto/requests"
	"context"
)

// ProgressFunc receives the bytes of file content sent so far out of total.
type ProgressFunc func(sent, total int64)

// ArogyaNetraClient is the upstream REST API. Every call that carries a
// bearer token takes it explicitly.
type ArogyaNetraClient interface {
	SendOTP(ctx context.Context, contactType, contactValue string) (string, error)
	Signup(ctx context.Context, form requests.UpstreamSignup) (*models.UserProfile, error)
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, error)
	GetUserDetails(ctx context.Context, token string) (*models.UserProfile, error)
	IssueCard(ctx context.Context, token string) (*models.ArogyaNetraCard, error)
	UpdateMedicalProfile(ctx context.Context, token string, body requests.UpdateMedicalProfile) error
	UploadDocuments(ctx context.Context, token, userID string, parts []requests.DocumentPart, progress ProgressFunc) error
	GetDocuments(ctx context.Context, token, userID string) ([]models.Document, error)
	GetReportSummary(ctx context.Context, token, userID string) (*models.ReportSummary, error)
	GetUserByCardID(ctx context.Context, token, cardID string) (*models.PatientRecord, error)
	VerifyCard(ctx context.Context, token, qrData string) (*models.PatientRecord, error)
	RecognizeFace(ctx context.Context, token string, photo *requests.UploadedFile) (*models.PatientRecord, error)
	// OnUnauthorized registers a hook run whenever upstream answers 401 or 403.
	OnUnauthorized(hook func(ctx context.Context))
}
