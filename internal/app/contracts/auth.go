package contracts

import (
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (*responses.Me, error)
}

type LoginLimiter interface {
	Check(ctx context.Context, email string) (int, error)
	RecordFailure(ctx context.Context, email string) (int, error)
	Reset(ctx context.Context, email string) error
}
