package contracts

import (
	"arogyanetra-service/internal/app/models"
	"context"
)

// SessionListener observes whole-object replacements. previous is nil on
// create and current is nil on destroy.
type SessionListener func(ctx context.Context, previous, current *models.Session)

type SessionService interface {
	Create(ctx context.Context, token string, user *models.UserProfile) (*models.Session, string, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	ParseToken(token string) (string, error)
	Replace(ctx context.Context, session *models.Session) error
	RefreshUser(ctx context.Context, sessionID string) (*models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
	Subscribe(listener SessionListener)
}
