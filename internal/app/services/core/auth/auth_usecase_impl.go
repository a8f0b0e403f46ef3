package auth

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/dto/responses"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionService contracts.SessionService
	Upstream       contracts.ArogyaNetraClient
	LoginLimiter   contracts.LoginLimiter
	AuditPublisher contracts.AuditPublisher
	Log            *zap.Logger
}

func NewAuthUsecase(
	sessionService contracts.SessionService,
	upstream contracts.ArogyaNetraClient,
	loginLimiter contracts.LoginLimiter,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		SessionService: sessionService,
		Upstream:       upstream,
		LoginLimiter:   loginLimiter,
		AuditPublisher: auditPublisher,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	retryAfter, err := uc.LoginLimiter.Check(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.Login error checking lockout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if retryAfter > 0 {
		uc.Log.Info("authUsecase.Login refused during lockout",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingRetryAfterSecondsKey, retryAfter),
		)
		return nil, exceptions.ErrLoginLocked(nil, retryAfter)
	}

	token, user, err := uc.Upstream.Login(ctx, request.Email, request.Password)
	if err != nil {
		if !isCredentialFailure(err) {
			uc.Log.Error("authUsecase.Login error calling upstream Login",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}

		lockout, limiterErr := uc.LoginLimiter.RecordFailure(ctx, request.Email)
		if limiterErr != nil {
			uc.Log.Error("authUsecase.Login error recording failed attempt",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(limiterErr),
			)
		}
		if lockout > 0 {
			return nil, exceptions.ErrLoginLocked(errors.New(err.Error()), lockout)
		}
		return nil, err
	}

	err = uc.LoginLimiter.Reset(ctx, request.Email)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error clearing failed attempts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	session, sessionToken, err := uc.SessionService.Create(ctx, token, user)
	if err != nil {
		return nil, err
	}

	uc.AuditPublisher.Publish(ctx, models.AuditEvent{
		Type:       constvars.AuditEventUserLoggedIn,
		ActorID:    user.ID,
		SubjectID:  user.ID,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Attributes: map[string]string{"client_ip": request.ClientIP, "account_type": user.AccountType},
	})

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	return &responses.Login{
		Token:     sessionToken,
		User:      user,
		NextRoute: user.LandingRoute(),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return uc.SessionService.Destroy(ctx, sessionID)
}

func (uc *authUsecase) Me(ctx context.Context, sessionID string) (*responses.Me, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionService.RefreshUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &responses.Me{
		User:      session.User,
		NextRoute: session.User.LandingRoute(),
	}, nil
}

// isCredentialFailure reports whether upstream rejected the credentials
// themselves, as opposed to being unreachable.
func isCredentialFailure(err error) bool {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.StatusCode == constvars.StatusUnprocessableEntity ||
		customErr.StatusCode == constvars.StatusUnauthorized
}
