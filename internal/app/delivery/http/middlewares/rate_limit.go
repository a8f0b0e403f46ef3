package middlewares

import (
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

const defaultMaxRequests = 100

// GlobalRateLimit caps requests per client IP per second across all routes.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	maxRequests := m.InternalConfig.App.MaxRequests
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	return httprate.Limit(
		maxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
