// Package lock guards jobs that must run on a single instance at a time.
package lock

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Locker interface {
	// TryRun runs fn while holding key. ran is false when another holder
	// owns the key; that is not an error.
	TryRun(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) (ran bool, err error)
}

type RedisLocker struct {
	client *redislock.Client
}

func NewRedis(rdb *redis.Client) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb)}
}

func (l *RedisLocker) TryRun(ctx context.Context, key string, ttl time.Duration, fn func(ctx context.Context) error) (bool, error) {
	lk, err := l.client.Obtain(ctx, key, ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		zap.L().Debug("lock held elsewhere", zap.String("key", key))
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't obtain lock", zap.String("key", key), zap.Error(err))
		return false, err
	}
	defer func() {
		if err := lk.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			zap.L().Error("can't release lock", zap.String("key", key), zap.Error(err))
		}
	}()

	return true, fn(ctx)
}

// Local always runs fn. It is used when no redis is configured and a single
// instance is deployed.
type Local struct{}

func (Local) TryRun(ctx context.Context, _ string, _ time.Duration, fn func(ctx context.Context) error) (bool, error) {
	return true, fn(ctx)
}
