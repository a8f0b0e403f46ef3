package locker

import (
	"arogyanetra-service/internal/app/services/shared/redis"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupLocker(t *testing.T) (*miniredis.Miniredis, *lockService) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, NewLockService(redis.NewRedisRepository(client), zap.NewNop()).(*lockService)
}

func TestLockService_TryLockAndUnlock(t *testing.T) {
	mr, locker := setupLocker(t)
	ctx := context.Background()

	acquired, value, err := locker.TryLock(ctx, "lock:a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, value)

	acquired, _, err = locker.TryLock(ctx, "lock:a", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second acquire must fail while held")

	require.NoError(t, locker.Unlock(ctx, "lock:a", value))
	assert.False(t, mr.Exists("lock:a"))

	acquired, _, err = locker.TryLock(ctx, "lock:a", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockService_UnlockWithWrongValue(t *testing.T) {
	mr, locker := setupLocker(t)
	ctx := context.Background()

	_, _, err := locker.TryLock(ctx, "lock:b", time.Minute)
	require.NoError(t, err)

	err = locker.Unlock(ctx, "lock:b", "someone-else")
	assert.Error(t, err)
	assert.True(t, mr.Exists("lock:b"))
}

func TestLockService_UnlockExpired(t *testing.T) {
	mr, locker := setupLocker(t)
	ctx := context.Background()

	_, value, err := locker.TryLock(ctx, "lock:c", time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	assert.NoError(t, locker.Unlock(ctx, "lock:c", value))
}
