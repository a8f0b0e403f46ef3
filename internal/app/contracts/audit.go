package contracts

import (
	"arogyanetra-service/internal/app/models"
	"context"
)

// AuditPublisher never fails the caller. Publish errors are logged.
type AuditPublisher interface {
	Publish(ctx context.Context, event models.AuditEvent)
}
