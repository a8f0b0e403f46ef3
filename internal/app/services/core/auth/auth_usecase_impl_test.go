package auth

import (
	"arogyanetra-service/internal/app/contracts/mocks"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/core/session"
	"arogyanetra-service/internal/app/services/shared/ratelimiter"
	"arogyanetra-service/internal/app/services/shared/redis"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/dto/requests"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	usecase  *authUsecase
	upstream *mocks.ArogyaNetraClient
	audit    *mocks.AuditPublisher
	redis    *miniredis.Miniredis
}

func setup(t *testing.T) *fixture {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	repo := redis.NewRedisRepository(client)

	logger := zap.NewNop()
	upstream := new(mocks.ArogyaNetraClient)
	audit := new(mocks.AuditPublisher)
	sessions := session.NewSessionService(repo, upstream, logger, "secret", 1)
	limiter := ratelimiter.NewLoginLimiter(repo, logger, 3, 30)

	uc := NewAuthUsecase(sessions, upstream, limiter, audit, logger)
	return &fixture{usecase: uc.(*authUsecase), upstream: upstream, audit: audit, redis: mr}
}

func statusCode(t *testing.T, err error) int {
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	return customErr.StatusCode
}

func TestLogin_RoutesByAccountAndProfile(t *testing.T) {
	cases := []struct {
		name  string
		user  *models.UserProfile
		route string
	}{
		{"complete user", &models.UserProfile{ID: "1", AccountType: constvars.AccountTypeUser, AdditionalDetails: &models.AdditionalDetails{IsProfileComplete: true}}, constvars.RouteUserDashboard},
		{"incomplete user", &models.UserProfile{ID: "2", AccountType: constvars.AccountTypeUser}, constvars.RouteCompleteProfile},
		{"doctor", &models.UserProfile{ID: "3", AccountType: constvars.AccountTypeDoctor}, constvars.RouteProfessionalDashboard},
		{"admin", &models.UserProfile{ID: "4", AccountType: constvars.AccountTypeAdmin}, constvars.RouteProfessionalDashboard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := setup(t)
			f.upstream.On("Login", mock.Anything, "a@b.com", "pw").Return("up-token", tc.user, nil)

			resp, err := f.usecase.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})
			require.NoError(t, err)
			assert.Equal(t, tc.route, resp.NextRoute)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, []string{constvars.AuditEventUserLoggedIn}, f.audit.Types())
		})
	}
}

func TestLogin_LocksAfterThreeFailures(t *testing.T) {
	f := setup(t)
	rejected := exceptions.ErrUpstreamBusinessFailure(nil, "/auth/login", "Invalid credentials")
	f.upstream.On("Login", mock.Anything, "a@b.com", "bad").Return("", nil, rejected)

	ctx := context.Background()
	req := &requests.Login{Email: "a@b.com", Password: "bad"}

	for i := 0; i < 2; i++ {
		_, err := f.usecase.Login(ctx, req)
		assert.Equal(t, constvars.StatusUnprocessableEntity, statusCode(t, err))
	}

	_, err := f.usecase.Login(ctx, req)
	assert.Equal(t, constvars.StatusTooManyRequests, statusCode(t, err))

	// locked: upstream is not called again
	_, err = f.usecase.Login(ctx, &requests.Login{Email: "a@b.com", Password: "good"})
	assert.Equal(t, constvars.StatusTooManyRequests, statusCode(t, err))
	f.upstream.AssertNumberOfCalls(t, "Login", 3)

	f.redis.FastForward(31 * time.Second)
	user := &models.UserProfile{ID: "1", AccountType: constvars.AccountTypeUser}
	f.upstream.On("Login", mock.Anything, "a@b.com", "good").Return("tkn", user, nil)
	_, err = f.usecase.Login(ctx, &requests.Login{Email: "a@b.com", Password: "good"})
	assert.NoError(t, err)
}

func TestLogin_NetworkFailureDoesNotCount(t *testing.T) {
	f := setup(t)
	down := exceptions.ErrUpstreamUnavailable(errors.New("dial tcp"), "/auth/login")
	f.upstream.On("Login", mock.Anything, "a@b.com", "pw").Return("", nil, down)

	for i := 0; i < 4; i++ {
		_, err := f.usecase.Login(context.Background(), &requests.Login{Email: "a@b.com", Password: "pw"})
		assert.Equal(t, constvars.StatusBadGateway, statusCode(t, err))
	}
}

func TestMe_RefreshesFromUpstream(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user := &models.UserProfile{ID: "1", AccountType: constvars.AccountTypeUser}
	f.upstream.On("Login", mock.Anything, "a@b.com", "pw").Return("tkn", user, nil)

	resp, err := f.usecase.Login(ctx, &requests.Login{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	sessionID, err := f.usecase.SessionService.ParseToken(resp.Token)
	require.NoError(t, err)

	complete := &models.UserProfile{ID: "1", AccountType: constvars.AccountTypeUser, AdditionalDetails: &models.AdditionalDetails{IsProfileComplete: true}}
	f.upstream.On("GetUserDetails", mock.Anything, "tkn").Return(complete, nil)

	me, err := f.usecase.Me(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, constvars.RouteUserDashboard, me.NextRoute)

	require.NoError(t, f.usecase.Logout(ctx, sessionID))
	_, err = f.usecase.Me(ctx, sessionID)
	assert.Equal(t, constvars.StatusUnauthorized, statusCode(t, err))
}
