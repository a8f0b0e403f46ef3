// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/dto/requests"
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"
)

type ArogyaNetraClient struct {
	mock.Mock

	hooksMu sync.Mutex
	hooks   []func(ctx context.Context)
}

func (m *ArogyaNetraClient) SendOTP(ctx context.Context, contactType, contactValue string) (string, error) {
	args := m.Called(ctx, contactType, contactValue)
	return args.String(0), args.Error(1)
}

func (m *ArogyaNetraClient) Signup(ctx context.Context, form requests.UpstreamSignup) (*models.UserProfile, error) {
	args := m.Called(ctx, form)
	user, _ := args.Get(0).(*models.UserProfile)
	return user, args.Error(1)
}

func (m *ArogyaNetraClient) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	args := m.Called(ctx, email, password)
	user, _ := args.Get(1).(*models.UserProfile)
	return args.String(0), user, args.Error(2)
}

func (m *ArogyaNetraClient) GetUserDetails(ctx context.Context, token string) (*models.UserProfile, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.UserProfile)
	return user, args.Error(1)
}

func (m *ArogyaNetraClient) IssueCard(ctx context.Context, token string) (*models.ArogyaNetraCard, error) {
	args := m.Called(ctx, token)
	card, _ := args.Get(0).(*models.ArogyaNetraCard)
	return card, args.Error(1)
}

func (m *ArogyaNetraClient) UpdateMedicalProfile(ctx context.Context, token string, body requests.UpdateMedicalProfile) error {
	args := m.Called(ctx, token, body)
	return args.Error(0)
}

// UploadDocuments drains every part so callers see their readers consumed,
// then reports full progress before returning the mocked error.
func (m *ArogyaNetraClient) UploadDocuments(ctx context.Context, token, userID string, parts []requests.DocumentPart, progress contracts.ProgressFunc) error {
	args := m.Called(ctx, token, userID, parts)
	var total int64
	for _, part := range parts {
		n, _ := io.Copy(io.Discard, part.Content)
		total += n
	}
	err := args.Error(0)
	if err == nil && progress != nil {
		progress(total, total)
	}
	return err
}

func (m *ArogyaNetraClient) GetDocuments(ctx context.Context, token, userID string) ([]models.Document, error) {
	args := m.Called(ctx, token, userID)
	docs, _ := args.Get(0).([]models.Document)
	return docs, args.Error(1)
}

func (m *ArogyaNetraClient) GetReportSummary(ctx context.Context, token, userID string) (*models.ReportSummary, error) {
	args := m.Called(ctx, token, userID)
	summary, _ := args.Get(0).(*models.ReportSummary)
	return summary, args.Error(1)
}

func (m *ArogyaNetraClient) GetUserByCardID(ctx context.Context, token, cardID string) (*models.PatientRecord, error) {
	args := m.Called(ctx, token, cardID)
	patient, _ := args.Get(0).(*models.PatientRecord)
	return patient, args.Error(1)
}

func (m *ArogyaNetraClient) VerifyCard(ctx context.Context, token, qrData string) (*models.PatientRecord, error) {
	args := m.Called(ctx, token, qrData)
	patient, _ := args.Get(0).(*models.PatientRecord)
	return patient, args.Error(1)
}

func (m *ArogyaNetraClient) RecognizeFace(ctx context.Context, token string, photo *requests.UploadedFile) (*models.PatientRecord, error) {
	args := m.Called(ctx, token, photo)
	patient, _ := args.Get(0).(*models.PatientRecord)
	return patient, args.Error(1)
}

func (m *ArogyaNetraClient) OnUnauthorized(hook func(ctx context.Context)) {
	m.hooksMu.Lock()
	defer m.hooksMu.Unlock()
	m.hooks = append(m.hooks, hook)
}

// FireUnauthorized runs the registered hooks the way the real client does
// on a 401 or 403.
func (m *ArogyaNetraClient) FireUnauthorized(ctx context.Context) {
	m.hooksMu.Lock()
	hooks := append([]func(ctx context.Context){}, m.hooks...)
	m.hooksMu.Unlock()
	for _, hook := range hooks {
		hook(ctx)
	}
}
