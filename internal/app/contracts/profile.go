package contracts

import (
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
)

type ProfileUsecase interface {
	Start(ctx context.Context, sessionID, mode string) (*responses.ProfileWizard, error)
	Current(ctx context.Context, sessionID string) (*responses.ProfileWizard, error)
	SaveStep(ctx context.Context, sessionID string, step int, request *requests.SaveProfileStep) (*responses.ProfileWizard, error)
	Back(ctx context.Context, sessionID string) (*responses.ProfileWizard, error)
	Submit(ctx context.Context, sessionID string) (*responses.SubmitProfile, error)
}
