package ratelimiter

import (
	"arogyanetra-service/internal/app/contracts"
	"arogyanetra-service/internal/pkg/constvars"
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
)

const failureMemory = time.Hour

// loginLimiter locks an email out for a fixed period once it reaches the
// configured number of consecutive failures.
type loginLimiter struct {
	redis       contracts.RedisRepository
	log         *zap.Logger
	maxFailures int
	lockout     time.Duration
}

func NewLoginLimiter(redis contracts.RedisRepository, log *zap.Logger, maxFailures, lockoutInSeconds int) contracts.LoginLimiter {
	return &loginLimiter{
		redis:       redis,
		log:         log,
		maxFailures: maxFailures,
		lockout:     time.Duration(lockoutInSeconds) * time.Second,
	}
}

func failureKey(email string) string {
	return fmt.Sprintf("%s:%s", constvars.LoginLimiterGroupName, strings.ToLower(email))
}

func lockKey(email string) string {
	return fmt.Sprintf("%s_LOCK:%s", constvars.LoginLimiterGroupName, strings.ToLower(email))
}

func ceilSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

// Check returns the seconds left on an active lockout, or 0.
func (l *loginLimiter) Check(ctx context.Context, email string) (int, error) {
	ttl, err := l.redis.TTL(ctx, lockKey(email))
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, nil
	}
	return ceilSeconds(ttl), nil
}

// RecordFailure counts a failed attempt. When the count reaches the limit
// the lockout starts, the counter resets and the lockout length is returned.
func (l *loginLimiter) RecordFailure(ctx context.Context, email string) (int, error) {
	count, err := l.redis.IncrementWithTTL(ctx, failureKey(email), failureMemory)
	if err != nil {
		return 0, err
	}
	if count < l.maxFailures {
		return 0, nil
	}

	err = l.redis.Set(ctx, lockKey(email), count, l.lockout)
	if err != nil {
		return 0, err
	}
	err = l.redis.Delete(ctx, failureKey(email))
	if err != nil {
		return 0, err
	}

	l.log.Warn("loginLimiter.RecordFailure lockout started",
		zap.String(constvars.LoggingRedisKey, lockKey(email)),
		zap.Int(constvars.LoggingRetryAfterSecondsKey, ceilSeconds(l.lockout)),
	)
	return ceilSeconds(l.lockout), nil
}

func (l *loginLimiter) Reset(ctx context.Context, email string) error {
	return l.redis.Delete(ctx, failureKey(email))
}
