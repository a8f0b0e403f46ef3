package session

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Upstream        contracts.ArogyaNetraClient
	Log             *zap.Logger
	JWTSecret       string
	ExpiryInHours   int

	listenersMu sync.RWMutex
	listeners   []contracts.SessionListener
}

// NewSessionService also subscribes to upstream authentication failures so
// that a 401 or 403 seen while serving a request ends that request's session.
func NewSessionService(redisRepository contracts.RedisRepository, upstream contracts.ArogyaNetraClient, logger *zap.Logger, jwtSecret string, expiryInHours int) contracts.SessionService {
	svc := &sessionService{
		RedisRepository: redisRepository,
		Upstream:        upstream,
		Log:             logger,
		JWTSecret:       jwtSecret,
		ExpiryInHours:   expiryInHours,
	}
	upstream.OnUnauthorized(svc.destroyFromContext)
	return svc
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
}

func (svc *sessionService) Subscribe(listener contracts.SessionListener) {
	svc.listenersMu.Lock()
	defer svc.listenersMu.Unlock()
	svc.listeners = append(svc.listeners, listener)
}

func (svc *sessionService) notify(ctx context.Context, previous, current *models.Session) {
	svc.listenersMu.RLock()
	listeners := append([]contracts.SessionListener{}, svc.listeners...)
	svc.listenersMu.RUnlock()

	for _, listener := range listeners {
		listener(ctx, previous, current)
	}
}

func (svc *sessionService) Create(ctx context.Context, token string, user *models.UserProfile) (*models.Session, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	now := time.Now()
	expiry := time.Duration(svc.ExpiryInHours) * time.Hour
	session := &models.Session{
		SessionID: uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(expiry),
	}

	jwtToken, err := utils.GenerateSessionJWT(session.SessionID, svc.JWTSecret, svc.ExpiryInHours)
	if err != nil {
		svc.Log.Error("sessionService.Create error generating session token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrTokenGenerate(err)
	}

	err = svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, expiry)
	if err != nil {
		svc.Log.Error("sessionService.Create error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", err
	}

	svc.notify(ctx, nil, session)

	svc.Log.Info("sessionService.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return session, jwtToken, nil
}

func (svc *sessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	session := new(models.Session)
	found, err := svc.RedisRepository.GetInto(ctx, sessionKey(sessionID), session)
	if err != nil {
		return nil, exceptions.ErrParseSessionData(err)
	}
	if !found {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (svc *sessionService) ParseToken(token string) (string, error) {
	sessionID, err := utils.ParseJWT(token, svc.JWTSecret)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	return sessionID, nil
}

// Replace stores session as a whole, keeping the expiry fixed at creation.
func (svc *sessionService) Replace(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	previous, err := svc.Get(ctx, session.SessionID)
	if err != nil {
		return err
	}

	remaining := time.Until(session.ExpiresAt)
	if remaining <= 0 {
		_ = svc.RedisRepository.Delete(ctx, sessionKey(session.SessionID))
		return exceptions.ErrSessionNotFound(errors.New("session expired"))
	}

	err = svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, remaining)
	if err != nil {
		svc.Log.Error("sessionService.Replace error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return err
	}

	svc.notify(ctx, previous, session)
	return nil
}

// RefreshUser replaces the cached user with what upstream returns now.
func (svc *sessionService) RefreshUser(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.RefreshUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	session, err := svc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := svc.Upstream.GetUserDetails(ctx, session.Token)
	if err != nil {
		svc.Log.Error("sessionService.RefreshUser error calling upstream GetUserDetails",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	next := session.WithUser(user)
	if err := svc.Replace(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (svc *sessionService) Destroy(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("sessionService.Destroy called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	previous, err := svc.Get(ctx, sessionID)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return nil
		}
		return err
	}

	err = svc.RedisRepository.Delete(ctx,
		sessionKey(sessionID),
		fmt.Sprintf(constvars.RedisKeyProfileWizardFormat, sessionID),
	)
	if err != nil {
		svc.Log.Error("sessionService.Destroy error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	svc.notify(ctx, previous, nil)
	return nil
}

func (svc *sessionService) destroyFromContext(ctx context.Context) {
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID == "" {
		return
	}

	err := svc.Destroy(context.WithoutCancel(ctx), sessionID)
	if err != nil {
		svc.Log.Warn("sessionService.destroyFromContext failed to destroy session",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}
