package middlewares

import (
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"arogyanetra-service/internal/pkg/utils"
	"math"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket per session, or per client IP when the
// request carries no session. A caller that drains its bucket is blocked
// for blockTime.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	every     time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(burst int, every, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		every:     every,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// Allow reports whether key may proceed and, when it may not, how long
// until it may retry.
func (r *RateLimiter) Allow(key string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[key]; found {
		if now.Before(blockedUntil) {
			return false, blockedUntil.Sub(now)
		}
		delete(r.blocked, key)
		delete(r.limiters, key)
	}

	limiter, exists := r.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.every), r.burst)
		r.limiters[key] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[key] = now.Add(r.blockTime)
		return false, r.blockTime
	}
	return true, 0
}

func (m *Middlewares) LimitFaceScan(next http.Handler) http.Handler {
	return m.limitWith(m.FaceLimiter)(next)
}

func (m *Middlewares) limitWith(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limiterKey(r)
			allowed, retryAfter := limiter.Allow(key)
			if !allowed {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Warn("rate limit exceeded",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Duration("retry_after", retryAfter),
				)
				seconds := int(math.Ceil(retryAfter.Seconds()))
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil).WithDetail("retry_after", seconds))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limiterKey(r *http.Request) string {
	if sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string); ok && sessionID != "" {
		return "session:" + sessionID
	}
	return "ip:" + clientIP(r)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
