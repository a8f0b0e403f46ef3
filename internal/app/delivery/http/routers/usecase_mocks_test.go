package routers

import (
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockAuthUsecase) Me(ctx context.Context, sessionID string) (*responses.Me, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.Me)
	return response, args.Error(1)
}

type MockRegistrationUsecase struct {
	mock.Mock
}

func (m *MockRegistrationUsecase) SubmitIdentity(ctx context.Context, request *requests.RegisterIdentity) (*responses.SignupDraft, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.SignupDraft)
	return response, args.Error(1)
}

func (m *MockRegistrationUsecase) Status(ctx context.Context, draftID string) (*responses.SignupDraft, error) {
	args := m.Called(ctx, draftID)
	response, _ := args.Get(0).(*responses.SignupDraft)
	return response, args.Error(1)
}

func (m *MockRegistrationUsecase) ResendOTP(ctx context.Context, draftID string) (*responses.SignupDraft, error) {
	args := m.Called(ctx, draftID)
	response, _ := args.Get(0).(*responses.SignupDraft)
	return response, args.Error(1)
}

func (m *MockRegistrationUsecase) VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.SignupDraft, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.SignupDraft)
	return response, args.Error(1)
}

func (m *MockRegistrationUsecase) CompleteSignup(ctx context.Context, request *requests.CompleteSignup) (*responses.CompleteSignup, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.CompleteSignup)
	return response, args.Error(1)
}

func (m *MockRegistrationUsecase) Abandon(ctx context.Context, draftID string) error {
	args := m.Called(ctx, draftID)
	return args.Error(0)
}

type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) Start(ctx context.Context, sessionID, mode string) (*responses.ProfileWizard, error) {
	args := m.Called(ctx, sessionID, mode)
	response, _ := args.Get(0).(*responses.ProfileWizard)
	return response, args.Error(1)
}

func (m *MockProfileUsecase) Current(ctx context.Context, sessionID string) (*responses.ProfileWizard, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.ProfileWizard)
	return response, args.Error(1)
}

func (m *MockProfileUsecase) SaveStep(ctx context.Context, sessionID string, step int, request *requests.SaveProfileStep) (*responses.ProfileWizard, error) {
	args := m.Called(ctx, sessionID, step, request)
	response, _ := args.Get(0).(*responses.ProfileWizard)
	return response, args.Error(1)
}

func (m *MockProfileUsecase) Back(ctx context.Context, sessionID string) (*responses.ProfileWizard, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.ProfileWizard)
	return response, args.Error(1)
}

func (m *MockProfileUsecase) Submit(ctx context.Context, sessionID string) (*responses.SubmitProfile, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.SubmitProfile)
	return response, args.Error(1)
}

type MockDocumentUsecase struct {
	mock.Mock
}

func (m *MockDocumentUsecase) StageFiles(ctx context.Context, request *requests.StageFiles) (*responses.StagingList, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.StagingList)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) AssignCategory(ctx context.Context, userID string, request *requests.AssignCategory) (*responses.StagingList, error) {
	args := m.Called(ctx, userID, request)
	response, _ := args.Get(0).(*responses.StagingList)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) RemoveStagedFile(ctx context.Context, userID, fileID string) (*responses.StagingList, error) {
	args := m.Called(ctx, userID, fileID)
	response, _ := args.Get(0).(*responses.StagingList)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) ListStaged(ctx context.Context, userID string) (*responses.StagingList, error) {
	args := m.Called(ctx, userID)
	response, _ := args.Get(0).(*responses.StagingList)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) CommitUpload(ctx context.Context, sessionID string) (*responses.CommitUpload, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.CommitUpload)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) Progress(ctx context.Context, userID string) (*responses.UploadProgress, error) {
	args := m.Called(ctx, userID)
	response, _ := args.Get(0).(*responses.UploadProgress)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) List(ctx context.Context, sessionID string, query *requests.DocumentQuery) (*responses.DocumentList, error) {
	args := m.Called(ctx, sessionID, query)
	response, _ := args.Get(0).(*responses.DocumentList)
	return response, args.Error(1)
}

func (m *MockDocumentUsecase) Summary(ctx context.Context, sessionID string) (*models.ReportSummary, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*models.ReportSummary)
	return response, args.Error(1)
}

type MockCardUsecase struct {
	mock.Mock
}

func (m *MockCardUsecase) GetOrCreate(ctx context.Context, sessionID string) (*responses.Card, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.Card)
	return response, args.Error(1)
}

func (m *MockCardUsecase) QRCode(ctx context.Context, sessionID string, size int) ([]byte, error) {
	args := m.Called(ctx, sessionID, size)
	response, _ := args.Get(0).([]byte)
	return response, args.Error(1)
}

func (m *MockCardUsecase) Export(ctx context.Context, sessionID string) ([]byte, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).([]byte)
	return response, args.Error(1)
}

func (m *MockCardUsecase) ExportLink(ctx context.Context, sessionID string) (*responses.CardExport, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.CardExport)
	return response, args.Error(1)
}

type MockIdentificationUsecase struct {
	mock.Mock
}

func (m *MockIdentificationUsecase) Identify(ctx context.Context, sessionID, method string, input *requests.IdentifyInput) (*responses.IdentifiedPatient, error) {
	args := m.Called(ctx, sessionID, method, input)
	response, _ := args.Get(0).(*responses.IdentifiedPatient)
	return response, args.Error(1)
}

func (m *MockIdentificationUsecase) Current(ctx context.Context, sessionID string) (*responses.IdentifiedPatient, error) {
	args := m.Called(ctx, sessionID)
	response, _ := args.Get(0).(*responses.IdentifiedPatient)
	return response, args.Error(1)
}

func (m *MockIdentificationUsecase) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
