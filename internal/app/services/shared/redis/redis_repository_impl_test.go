package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func setupRepository(t *testing.T) (*miniredis.Miniredis, *redisRepository) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, &redisRepository{client: client}
}

func TestRedisRepository_SetAndGetInto(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "k", sample{Name: "asha", Count: 2}, time.Minute))

	var got sample
	found, err := repo.GetInto(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "asha", Count: 2}, got)

	raw, err := repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"asha","count":2}`, raw)
}

func TestRedisRepository_MissingKey(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	raw, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, raw)

	var got sample
	found, err := repo.GetInto(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisRepository_IncrementWithTTL(t *testing.T) {
	mr, repo := setupRepository(t)
	ctx := context.Background()

	count, err := repo.IncrementWithTTL(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.IncrementWithTTL(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, 10*time.Second, mr.TTL("counter"))

	mr.FastForward(11 * time.Second)
	count, err = repo.IncrementWithTTL(ctx, "counter", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRedisRepository_TTLAndDelete(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	ttl, err := repo.TTL(ctx, "nothing")
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Duration(0))

	require.NoError(t, repo.Set(ctx, "a", 1, 30*time.Second))
	require.NoError(t, repo.Set(ctx, "b", 2, 0))
	ttl, err = repo.TTL(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, ttl)

	require.NoError(t, repo.Delete(ctx, "a", "b"))
	raw, err := repo.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, raw)

	assert.NoError(t, repo.Delete(ctx))
}

func TestRedisRepository_TrySetNX(t *testing.T) {
	_, repo := setupRepository(t)
	ctx := context.Background()

	acquired, err := repo.TrySetNX(ctx, "lock", "v1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = repo.TrySetNX(ctx, "lock", "v2", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)

	raw, err := repo.Get(ctx, "lock")
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, raw)
}
