package contracts

import (
	"arogyanetra-service/internal/pkg/dto/responses"
	"context"
)

type CardUsecase interface {
	GetOrCreate(ctx context.Context, sessionID string) (*responses.Card, error)
	QRCode(ctx context.Context, sessionID string, size int) ([]byte, error)
	Export(ctx context.Context, sessionID string) ([]byte, error)
	ExportLink(ctx context.Context, sessionID string) (*responses.CardExport, error)
}
