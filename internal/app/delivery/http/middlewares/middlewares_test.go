package middlewares

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/app/contracts/mocks"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/core/roles"
	"arogyanetra-service/internal/app/services/core/session"
	"arogyanetra-service/internal/app/services/shared/locker"
	"arogyanetra-service/internal/app/services/shared/redis"
	"arogyanetra-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type middlewareFixture struct {
	mw       *Middlewares
	sessions contracts.SessionService
	locker   contracts.LockerService
}

func setupMiddlewares(t *testing.T) *middlewareFixture {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := redis.NewRedisRepository(client)

	logger := zap.NewNop()
	sessions := session.NewSessionService(repo, new(mocks.ArogyaNetraClient), logger, "secret", 1)
	lockService := locker.NewLockService(repo, logger)
	authorizer, err := roles.NewCasbinAuthorizer()
	require.NoError(t, err)

	cfg := &config.InternalConfig{
		App:            config.App{RequestBodyLimitInMegabyte: 1},
		Identification: config.AppIdentify{FaceScanRequestsPerMinute: 60, FaceScanBurst: 2},
	}
	return &middlewareFixture{
		mw:       NewMiddlewares(logger, sessions, authorizer, lockService, cfg, "/api/v1"),
		sessions: sessions,
		locker:   lockService,
	}
}

func (f *middlewareFixture) login(t *testing.T, accountType string) (*models.Session, string) {
	sess, token, err := f.sessions.Create(context.Background(), "upstream", &models.UserProfile{ID: "u-" + accountType, AccountType: accountType})
	require.NoError(t, err)
	return sess, token
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	f := setupMiddlewares(t)
	sess, token := f.login(t, constvars.AccountTypeUser)

	var seenID string
	var seenSession *models.Session
	handler := f.mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID, _ = r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
		seenSession, _ = r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
		okHandler(w, r)
	}))

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, sess.SessionID, seenID)
		require.NotNil(t, seenSession)
		assert.Equal(t, "u-User", seenSession.UserID())
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("destroyed session", func(t *testing.T) {
		require.NoError(t, f.sessions.Destroy(context.Background(), sess.SessionID))
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthorize(t *testing.T) {
	f := setupMiddlewares(t)

	tests := []struct {
		name        string
		accountType string
		method      string
		path        string
		want        int
	}{
		{"user reads own card", constvars.AccountTypeUser, http.MethodGet, "/api/v1/cards/me", http.StatusNoContent},
		{"user removes staged file", constvars.AccountTypeUser, http.MethodDelete, "/api/v1/documents/staging/abc", http.StatusNoContent},
		{"user cannot scan faces", constvars.AccountTypeUser, http.MethodPost, "/api/v1/identify/facescan", http.StatusForbidden},
		{"doctor scans faces", constvars.AccountTypeDoctor, http.MethodPost, "/api/v1/identify/facescan", http.StatusNoContent},
		{"doctor cannot upload", constvars.AccountTypeDoctor, http.MethodPost, "/api/v1/documents/staging", http.StatusForbidden},
		{"admin inherits doctor", constvars.AccountTypeAdmin, http.MethodGet, "/api/v1/identify/current", http.StatusNoContent},
		{"everyone logs out", constvars.AccountTypeDoctor, http.MethodPost, "/api/v1/auth/logout", http.StatusNoContent},
	}

	handler := f.mw.Authorize(http.HandlerFunc(okHandler))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _ := f.login(t, tt.accountType)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, sess))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.want, rr.Code)
		})
	}

	t.Run("no session in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/cards/me", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthorize_RootBasePath(t *testing.T) {
	f := setupMiddlewares(t)
	f.mw.BasePath = "/"
	handler := f.mw.Authorize(http.HandlerFunc(okHandler))

	sess, _ := f.login(t, constvars.AccountTypeUser)
	req := httptest.NewRequest(http.MethodGet, "/cards/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_KEY, sess))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestInFlight(t *testing.T) {
	f := setupMiddlewares(t)

	router := chi.NewRouter()
	router.With(f.mw.InFlight("step:otp_verify")).Post("/register/{draftID}/otp/verify", okHandler)

	t.Run("rejects while held", func(t *testing.T) {
		key := fmt.Sprintf(constvars.RedisKeyInFlightLockFormat, "draft-d1", "step:otp_verify")
		acquired, value, err := f.locker.TryLock(context.Background(), key, time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/register/d1/otp/verify", nil))
		assert.Equal(t, http.StatusConflict, rr.Code)

		require.NoError(t, f.locker.Unlock(context.Background(), key, value))
	})

	t.Run("other drafts are independent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/register/d2/otp/verify", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("released after the handler returns", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/register/d1/otp/verify", nil))
			assert.Equal(t, http.StatusNoContent, rr.Code)
		}
	})
}

func TestInFlightOwner(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "ip-10.0.0.7", inFlightOwner(req))

	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_ID_KEY, "s1"))
	assert.Equal(t, "s1", inFlightOwner(req))
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, 30*time.Second)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	allowed, _ := limiter.Allow("session:a")
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("session:a")
	assert.True(t, allowed)

	allowed, retryAfter := limiter.Allow("session:a")
	assert.False(t, allowed)
	assert.Equal(t, 30*time.Second, retryAfter)

	allowed, _ = limiter.Allow("session:b")
	assert.True(t, allowed, "keys have separate buckets")

	now = now.Add(10 * time.Second)
	allowed, retryAfter = limiter.Allow("session:a")
	assert.False(t, allowed)
	assert.Equal(t, 20*time.Second, retryAfter)

	now = now.Add(25 * time.Second)
	allowed, _ = limiter.Allow("session:a")
	assert.True(t, allowed, "block lifts with a fresh bucket")
}

func TestLimitFaceScan(t *testing.T) {
	f := setupMiddlewares(t)
	handler := f.mw.LimitFaceScan(http.HandlerFunc(okHandler))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/identify/facescan", nil)
		req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_SESSION_ID_KEY, "s1"))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
		if rr.Code == http.StatusTooManyRequests {
			assert.Equal(t, "60", rr.Header().Get(constvars.HeaderRetryAfter))
		}
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestBodyLimit(t *testing.T) {
	f := setupMiddlewares(t)

	var readErr error
	handler := f.mw.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 2<<20)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
		okHandler(w, r)
	}))

	body := strings.NewReader(strings.Repeat("a", 2<<20))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", body))

	require.Error(t, readErr)
	assert.Contains(t, readErr.Error(), "too large")
}

func TestErrorHandler_RecoversPanics(t *testing.T) {
	f := setupMiddlewares(t)
	handler := f.mw.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":false`)
}

func TestRequestIDMiddleware(t *testing.T) {
	f := setupMiddlewares(t)

	var seen string
	handler := f.mw.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "client-id", seen)
}
