package contracts

import (
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
)

type IdentificationUsecase interface {
	Identify(ctx context.Context, sessionID, method string, input *requests.IdentifyInput) (*responses.IdentifiedPatient, error)
	Current(ctx context.Context, sessionID string) (*responses.IdentifiedPatient, error)
	Clear(ctx context.Context, sessionID string) error
}
