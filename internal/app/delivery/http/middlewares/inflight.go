package middlewares

import (
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultInFlightTimeout = 2 * time.Minute

// InFlight rejects a second submit of the same flow step with 409 while the
// first is still being handled. The owner is the session, else the signup
// draft in the URL, else the client IP.
func (m *Middlewares) InFlight(step string) func(http.Handler) http.Handler {
	timeout := time.Duration(m.InternalConfig.App.InFlightLockTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultInFlightTimeout
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := fmt.Sprintf(constvars.RedisKeyInFlightLockFormat, inFlightOwner(r), step)

			acquired, lockValue, err := m.Locker.TryLock(r.Context(), key, timeout)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
			if !acquired {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestInFlight(nil, key))
				return
			}
			defer func() {
				err := m.Locker.Unlock(context.WithoutCancel(r.Context()), key, lockValue)
				if err != nil {
					m.Log.Warn("InFlight unlock failed",
						zap.String(constvars.LoggingRedisKey, key),
						zap.Error(err),
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func inFlightOwner(r *http.Request) string {
	if sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok && sessionID != "" {
		return sessionID
	}
	if draftID := chi.URLParam(r, "draftID"); draftID != "" {
		return "draft-" + draftID
	}
	return "ip-" + clientIP(r)
}
