package documents

import (
	"arogyanetra-service/internal/app/config"
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const fallbackCleanupSpec = "@hourly"

// Worker removes staging batches nobody committed. Only the instance holding
// the leader lock sweeps on a given tick.
type Worker struct {
	log         *zap.Logger
	cfg         *config.InternalConfig
	locker      contracts.LockerService
	stagingRepo contracts.StagingRepository
	storage     contracts.Storage
	now         func() time.Time
	stop        chan struct{}
	cron        *cron.Cron
	runCtx      context.Context
	cancel      context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, stagingRepo contracts.StagingRepository, storage contracts.Storage) *Worker {
	return &Worker{
		log:         log,
		cfg:         cfg,
		locker:      lockerSvc,
		stagingRepo: stagingRepo,
		storage:     storage,
		now:         time.Now,
		stop:        make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	spec := w.cfg.Staging.CleanupCronSpec
	_, err := c.AddFunc(spec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("documents.worker: invalid cleanup cron spec; falling back to @hourly",
			zap.String("spec", spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCleanupSpec, func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for a running sweep to finish.
func (w *Worker) Stop() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		ctx := w.cron.Stop()
		<-ctx.Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ttl := 2 * time.Minute
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeyStagingCleanupLock, ttl)
	if err != nil {
		w.log.Warn("documents.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("documents.worker: leader lock not acquired; another instance is sweeping")
		return
	}
	defer w.locker.Unlock(ctx, constvars.RedisKeyStagingCleanupLock, token)

	removed, err := w.sweep(ctx)
	if err != nil {
		w.log.Error("documents.worker: sweep failed", zap.Error(err))
		return
	}
	w.log.Info("documents.worker: sweep finished", zap.Int("batches_removed", removed))
}

// sweep deletes every batch untouched for longer than the staging expiry
// along with its objects. It returns how many batches were removed.
func (w *Worker) sweep(ctx context.Context) (int, error) {
	expiry := time.Duration(w.cfg.Staging.ExpiredTimeInHours) * time.Hour
	cutoff := w.now().Add(-expiry)

	batches, err := w.stagingRepo.FindUpdatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	bucket := w.cfg.Minio.StagingBucketName
	removed := 0
	for _, batch := range batches {
		select {
		case <-w.stop:
			return removed, nil
		default:
		}

		for _, file := range batch.Files {
			err := w.storage.RemoveObject(ctx, bucket, file.ObjectKey)
			if err != nil {
				w.log.Warn("documents.worker: failed removing staged object",
					zap.String(constvars.LoggingObjectKey, file.ObjectKey),
					zap.Error(err),
				)
			}
		}

		err := w.stagingRepo.DeleteByUserID(ctx, batch.UserID)
		if err != nil {
			w.log.Warn("documents.worker: failed deleting staging batch",
				zap.String(constvars.LoggingUserIDKey, batch.UserID),
				zap.Error(err),
			)
			continue
		}
		removed++
	}
	return removed, nil
}
