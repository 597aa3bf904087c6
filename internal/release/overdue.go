package release

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/config"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/lock"
)

const overdueLockKey = "repasse:jobs:overdue"

// Sweeper persists the atrasada status of late installments. Only one
// instance sweeps at a time.
type Sweeper struct {
	marker   OverdueMarker
	locker   lock.Locker
	metrics  *telemetry.Metrics
	interval time.Duration
	now      func() time.Time
}

func NewSweeper(cfg *config.Config, marker OverdueMarker, locker lock.Locker, metrics *telemetry.Metrics) *Sweeper {
	return &Sweeper{
		marker:   marker,
		locker:   locker,
		metrics:  metrics,
		interval: cfg.OverdueInterval,
		now:      time.Now,
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("Overdue sweeper started", zap.Duration("interval", s.interval))
	go s.Run(ctx)
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping overdue sweeper")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sweeper) tick(ctx context.Context) {
	if _, _, err := s.Sweep(ctx, s.now()); err != nil && ctx.Err() == nil {
		zap.L().Error("Overdue sweep failed", zap.Error(err))
	}
}

// Sweep marks overdue installments as of now. ran is false when another
// instance holds the sweep lock.
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) (ids []string, ran bool, err error) {
	defer s.metrics.ObserveJob("overdue", time.Now())

	ran, err = s.locker.TryRun(ctx, overdueLockKey, s.interval, func(ctx context.Context) error {
		var err error
		ids, err = s.marker.RecomputeOverdue(ctx, now)
		return err
	})
	return ids, ran, err
}
