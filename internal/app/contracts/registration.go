package contracts

import (
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
)

type RegistrationUsecase interface {
	SubmitIdentity(ctx context.Context, request *requests.RegisterIdentity) (*responses.SignupDraft, error)
	Status(ctx context.Context, draftID string) (*responses.SignupDraft, error)
	ResendOTP(ctx context.Context, draftID string) (*responses.SignupDraft, error)
	VerifyOTP(ctx context.Context, request *requests.VerifyOTP) (*responses.SignupDraft, error)
	CompleteSignup(ctx context.Context, request *requests.CompleteSignup) (*responses.CompleteSignup, error)
	Abandon(ctx context.Context, draftID string) error
}
