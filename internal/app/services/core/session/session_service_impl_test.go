package session

import (
	"arogyanetra-service/internal/app/contracts/mocks"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/shared/redis"
	"arogyanetra-service/internal/pkg/constvars"
	"arogyanetra-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "session-test-secret"

func setupService(t *testing.T) (*sessionService, *mocks.ArogyaNetraClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	upstream := new(mocks.ArogyaNetraClient)
	svc := NewSessionService(redis.NewRedisRepository(client), upstream, zap.NewNop(), testSecret, 24)
	return svc.(*sessionService), upstream, mr
}

func newUser() *models.UserProfile {
	return &models.UserProfile{ID: "u1", FirstName: "Asha", AccountType: constvars.AccountTypeUser}
}

func TestCreate_StoresSessionAndIssuesToken(t *testing.T) {
	svc, _, mr := setupService(t)
	ctx := context.Background()

	session, token, err := svc.Create(ctx, "upstream-token", newUser())
	require.NoError(t, err)
	assert.True(t, mr.Exists("session:"+session.SessionID))

	sessionID, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, sessionID)

	stored, err := svc.Get(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", stored.Token)
	assert.Equal(t, "u1", stored.UserID())
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	svc, _, _ := setupService(t)
	_, token, err := (&sessionService{
		RedisRepository: svc.RedisRepository,
		Log:             zap.NewNop(),
		JWTSecret:       "other",
		ExpiryInHours:   1,
	}).Create(context.Background(), "t", newUser())
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

func TestGet_MissingSessionIsUnauthorized(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.Get(context.Background(), "nope")
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestReplace_NotifiesListenersWithWholeObjects(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	session, _, err := svc.Create(ctx, "t", newUser())
	require.NoError(t, err)

	var seenPrevious, seenCurrent *models.Session
	svc.Subscribe(func(ctx context.Context, previous, current *models.Session) {
		seenPrevious, seenCurrent = previous, current
	})

	updated := newUser()
	updated.LastName = "Rao"
	require.NoError(t, svc.Replace(ctx, session.WithUser(updated)))

	require.NotNil(t, seenPrevious)
	require.NotNil(t, seenCurrent)
	assert.Equal(t, "", seenPrevious.User.LastName)
	assert.Equal(t, "Rao", seenCurrent.User.LastName)

	stored, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Rao", stored.User.LastName)
}

func TestRefreshUser_ReplacesCachedUser(t *testing.T) {
	svc, upstream, _ := setupService(t)
	ctx := context.Background()

	session, _, err := svc.Create(ctx, "tkn", newUser())
	require.NoError(t, err)

	fresh := newUser()
	fresh.AdditionalDetails = &models.AdditionalDetails{IsProfileComplete: true}
	upstream.On("GetUserDetails", mock.Anything, "tkn").Return(fresh, nil).Once()

	refreshed, err := svc.RefreshUser(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, refreshed.User.IsProfileComplete())
	upstream.AssertExpectations(t)
}

func TestDestroy_RemovesSessionAndWizard(t *testing.T) {
	svc, _, mr := setupService(t)
	ctx := context.Background()

	session, _, err := svc.Create(ctx, "t", newUser())
	require.NoError(t, err)
	require.NoError(t, mr.Set("profile_wizard:"+session.SessionID, "{}"))

	var destroyed bool
	svc.Subscribe(func(ctx context.Context, previous, current *models.Session) {
		destroyed = previous != nil && current == nil
	})

	require.NoError(t, svc.Destroy(ctx, session.SessionID))
	assert.False(t, mr.Exists("session:"+session.SessionID))
	assert.False(t, mr.Exists("profile_wizard:"+session.SessionID))
	assert.True(t, destroyed)

	assert.NoError(t, svc.Destroy(ctx, session.SessionID))
}

func TestUpstreamUnauthorized_DestroysRequestSession(t *testing.T) {
	svc, upstream, mr := setupService(t)

	session, _, err := svc.Create(context.Background(), "t", newUser())
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_SESSION_ID_KEY, session.SessionID)
	upstream.FireUnauthorized(ctx)

	assert.False(t, mr.Exists("session:"+session.SessionID))
}
