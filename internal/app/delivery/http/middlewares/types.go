package middlewares

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	Authorizer     contracts.Authorizer
	Locker         contracts.LockerService
	InternalConfig *config.InternalConfig
	// BasePath is stripped from request paths before authorization.
	BasePath    string
	FaceLimiter *RateLimiter
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionService contracts.SessionService,
	authorizer contracts.Authorizer,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	basePath string,
) *Middlewares {
	perMinute := internalConfig.Identification.FaceScanRequestsPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := internalConfig.Identification.FaceScanBurst
	if burst <= 0 {
		burst = 1
	}

	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		Authorizer:     authorizer,
		Locker:         locker,
		InternalConfig: internalConfig,
		BasePath:       basePath,
		FaceLimiter:    NewRateLimiter(burst, time.Minute/time.Duration(perMinute), time.Minute),
	}
}
