package release

import (
	"context"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/repasse/internal/config"
	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/telemetry"
)

//go:generate mockgen -source=release.go -destination=mock_release.go -package=release

type Claimer interface {
	ClaimDueForRelease(ctx context.Context, workerID string, now time.Time, limit int, lease time.Duration) ([]domain.FinancialTransaction, error)
}

type Releaser interface {
	Release(ctx context.Context, id string, now time.Time) (bool, error)
}

type OverdueMarker interface {
	RecomputeOverdue(ctx context.Context, now time.Time) ([]string, error)
}

const (
	skipNotEligible = "not_eligible"
	skipConflict    = "conflict"
	skipError       = "error"
)

// Service periodically moves due pendente transactions to liberado. Several
// instances may run against the same database: each claims a disjoint batch.
type Service struct {
	claimer    Claimer
	releaser   Releaser
	metrics    *telemetry.Metrics
	workerPool WorkerPoolI
	workerID   string
	limit      int
	lease      time.Duration
	interval   time.Duration
	inFlight   sync.Map
	now        func() time.Time
}

func New(cfg *config.Config, claimer Claimer, releaser Releaser, metrics *telemetry.Metrics) *Service {
	return &Service{
		claimer:    claimer,
		releaser:   releaser,
		metrics:    metrics,
		workerPool: NewWorkerPool("release", cfg.ReleaseWorkers),
		workerID:   workerID(),
		limit:      cfg.ReleaseBatchSize,
		lease:      cfg.ClaimLease,
		interval:   cfg.ReleaseInterval,
		now:        time.Now,
	}
}

func workerID() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "repasse"
	}
	return host + "-" + uuid.NewString()[:8]
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Release service started", zap.String("worker_id", s.workerID), zap.Duration("interval", s.interval))
	go s.Run(ctx)
}

// Run sweeps on every tick until ctx is done.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping release service")
			return
		case <-ticker.C:
			if _, err := s.AdvanceReleases(ctx, s.now()); err != nil {
				zap.L().Error("Release sweep failed", zap.Error(err))
			}
		}
	}
}

// Close waits for in-flight releases and stops the worker pool. Later
// AdvanceReleases calls fail with ErrPoolClosed.
func (s *Service) Close() {
	s.workerPool.Close()
}

// AdvanceReleases claims the transactions due at now and releases each of
// them. It returns the IDs this call moved to liberado, sorted. Rows that
// are no longer eligible or lose a race to another writer are skipped.
func (s *Service) AdvanceReleases(ctx context.Context, now time.Time) ([]string, error) {
	defer s.metrics.ObserveJob("release", time.Now())

	due, err := s.claimer.ClaimDueForRelease(ctx, s.workerID, now, s.limit, s.lease)
	if err != nil {
		zap.L().Error("Failed to claim transactions for release", zap.Error(err))
		return nil, err
	}
	if len(due) == 0 {
		return []string{}, nil
	}

	var (
		mu       sync.Mutex
		released = make([]string, 0, len(due))
		wg       sync.WaitGroup
		g        errgroup.Group
	)
	for _, tx := range due {
		id := tx.ID
		if _, loaded := s.inFlight.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(id)

				ok, err := s.releaser.Release(ctx, id, now)
				if err != nil {
					s.skip(id, err)
					return nil
				}
				if ok {
					s.metrics.ReleaseAdvanced()
					mu.Lock()
					released = append(released, id)
					mu.Unlock()
				}
				return nil
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(id)
				return err
			}
			return nil
		})
	}

	submitErr := g.Wait()
	wg.Wait()

	sort.Strings(released)
	if len(released) > 0 {
		zap.L().Info("Transactions released", zap.Int("count", len(released)), zap.Int("claimed", len(due)))
	}
	return released, submitErr
}

func (s *Service) skip(id string, err error) {
	reason := skipError
	switch {
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrNotFound):
		reason = skipNotEligible
		zap.L().Debug("Transaction not eligible for release", zap.String("id", id), zap.Error(err))
	case errors.Is(err, domain.ErrConcurrencyConflict):
		reason = skipConflict
		zap.L().Warn("Release lost a concurrent update", zap.String("id", id), zap.Error(err))
	default:
		zap.L().Error("Failed to release transaction", zap.String("id", id), zap.Error(err))
	}
	s.metrics.ReleaseSkipped(reason)
}
