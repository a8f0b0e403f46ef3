package documents

import (
	"arogyanetra-service/internal/app/contracts/mocks"
	"arogyanetra-service/internal/app/models"
	"arogyanetra-service/internal/app/services/shared/locker"
	"arogyanetra-service/internal/app/services/shared/redis"
	"arogyanetra-service/internal/pkg/constvars"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorker(t *testing.T) (*Worker, *mocks.StagingRepository, *mocks.Storage, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	lockSvc := locker.NewLockService(redis.NewRedisRepository(client), logger)
	staging := mocks.NewStagingRepository()
	storage := mocks.NewStorage()
	return NewWorker(logger, testConfig(), lockSvc, staging, storage), staging, storage, mr
}

func seedBatch(t *testing.T, staging *mocks.StagingRepository, storage *mocks.Storage, userID string, updatedAt time.Time) {
	ctx := context.Background()
	key := "staging/" + userID + "/file.pdf"
	require.NoError(t, storage.PutObject(ctx, "staging", key, []byte("x"), constvars.MIMEApplicationPDF))
	require.NoError(t, staging.Save(ctx, &models.StagingBatch{
		ID:        userID + "-batch",
		UserID:    userID,
		Files:     []models.StagedFile{{ID: "f", FileName: "file.pdf", ObjectKey: key}},
		UpdatedAt: updatedAt,
	}))
}

func TestWorker_SweepRemovesOnlyExpiredBatches(t *testing.T) {
	w, staging, storage, _ := newTestWorker(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return now }

	seedBatch(t, staging, storage, "stale", now.Add(-25*time.Hour))
	seedBatch(t, staging, storage, "fresh", now.Add(-time.Hour))

	removed, err := w.sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	stale, err := staging.FindByUserID(context.Background(), "stale")
	require.NoError(t, err)
	assert.Nil(t, stale)
	fresh, err := staging.FindByUserID(context.Background(), "fresh")
	require.NoError(t, err)
	assert.NotNil(t, fresh)
	assert.Equal(t, 1, storage.Len())
}

func TestWorker_RunOnceSkipsWithoutLeaderLock(t *testing.T) {
	w, staging, storage, mr := newTestWorker(t)
	w.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	seedBatch(t, staging, storage, "stale", time.Now())

	require.NoError(t, mr.Set(constvars.RedisKeyStagingCleanupLock, `"other-instance"`))
	w.runOnce(context.Background())
	assert.Equal(t, 1, storage.Len())

	mr.Del(constvars.RedisKeyStagingCleanupLock)
	w.runOnce(context.Background())
	assert.Equal(t, 0, storage.Len())
	assert.False(t, mr.Exists(constvars.RedisKeyStagingCleanupLock))
}

func TestWorker_StartStop(t *testing.T) {
	w, _, _, _ := newTestWorker(t)
	w.cfg.Staging.CleanupCronSpec = "not a spec"
	w.Start(context.Background())
	require.NotNil(t, w.cron)
	assert.Len(t, w.cron.Entries(), 1)
	w.Stop()
	w.Stop()
}
