package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLocker_TryRun(t *testing.T) {
	ctx := context.Background()
	rdb := newRedis(t)
	locker := NewRedis(rdb)

	t.Run("runs and releases", func(t *testing.T) {
		calls := 0
		ran, err := locker.TryRun(ctx, "jobs:overdue", time.Minute, func(ctx context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.True(t, ran)
		assert.Equal(t, 1, calls)

		ran, err = locker.TryRun(ctx, "jobs:overdue", time.Minute, func(ctx context.Context) error { return nil })
		require.NoError(t, err)
		assert.True(t, ran)
	})

	t.Run("skips when held", func(t *testing.T) {
		held, err := redislock.New(rdb).Obtain(ctx, "jobs:held", time.Minute, nil)
		require.NoError(t, err)
		defer held.Release(ctx)

		ran, err := locker.TryRun(ctx, "jobs:held", time.Minute, func(ctx context.Context) error {
			t.Fatal("must not run")
			return nil
		})
		require.NoError(t, err)
		assert.False(t, ran)
	})

	t.Run("returns fn error", func(t *testing.T) {
		boom := errors.New("boom")
		ran, err := locker.TryRun(ctx, "jobs:failing", time.Minute, func(ctx context.Context) error { return boom })
		assert.True(t, ran)
		assert.ErrorIs(t, err, boom)
	})
}

func TestRedisLocker_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	ran, err := NewRedis(rdb).TryRun(context.Background(), "jobs:overdue", time.Minute, func(ctx context.Context) error { return nil })
	assert.Error(t, err)
	assert.False(t, ran)
}

func TestLocal_TryRun(t *testing.T) {
	ran, err := Local{}.TryRun(context.Background(), "any", time.Second, func(ctx context.Context) error { return nil })
	assert.NoError(t, err)
	assert.True(t, ran)
}
