package transactionservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/settlement"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/retry"
)

//go:generate mockgen -source=transactionservice.go -destination=mock_transactionservice.go -package=transactionservice

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.FinancialTransaction, error)
	FindByIDForUpdate(ctx context.Context, id string) (*domain.FinancialTransaction, error)
	FindByOrderID(ctx context.Context, orderID string) (*domain.FinancialTransaction, error)
	Create(ctx context.Context, tx *domain.FinancialTransaction) error
	Update(ctx context.Context, tx *domain.FinancialTransaction) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type ModalityResolver interface {
	Resolve(ctx context.Context, resellerID string, unitID *string) (domain.ModalityConfig, error)
}

type Service struct {
	repo      Repo
	orders    OrderRepo
	modality  ModalityResolver
	txManager pg.TXManager
	retry     retry.Policy
	metrics   *telemetry.Metrics
	now       func() time.Time
}

func New(repo Repo, orders OrderRepo, modality ModalityResolver, txManager pg.TXManager, policy retry.Policy, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		modality:  modality,
		txManager: txManager,
		retry:     policy,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *Service) policy(operation string) retry.Policy {
	p := s.retry
	p.OnRetry = func(err error) {
		s.metrics.ConflictRetried(operation)
		zap.L().Debug("retrying after conflict", zap.String("operation", operation), zap.Error(err))
	}
	return p
}

// CreateForOrder loads the order and derives its transaction.
func (s *Service) CreateForOrder(ctx context.Context, orderID string) (*domain.FinancialTransaction, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to load order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundf("order %s", orderID)
	}
	return s.CreateTransaction(ctx, *order)
}

// CreateTransaction derives the pendente transaction for a paid order. The
// modality and fees are resolved now and frozen on the row. Calling it again
// for the same order returns the existing transaction.
func (s *Service) CreateTransaction(ctx context.Context, order domain.Order) (*domain.FinancialTransaction, error) {
	existing, err := s.repo.FindByOrderID(ctx, order.ID)
	if err != nil {
		zap.L().Error("failed to check existing transaction", zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if order.PaidAt == nil {
		return nil, domain.Validationf("order %s is not paid", order.ID)
	}

	cfg, err := s.modality.Resolve(ctx, order.ResellerID, order.UnitID)
	if err != nil {
		zap.L().Error("failed to resolve modality", zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}
	net, err := settlement.ComputeNet(order.GrossAmount, cfg.PercentageFee, cfg.FixedFee)
	if err != nil {
		return nil, err
	}
	releaseDate, err := settlement.ReleaseDate(*order.PaidAt, cfg.Modality)
	if err != nil {
		return nil, err
	}

	tx := &domain.FinancialTransaction{
		ID:                   uuid.NewString(),
		OrderID:              order.ID,
		ResellerID:           order.ResellerID,
		UnitID:               order.UnitID,
		GrossAmount:          order.GrossAmount,
		PercentageFee:        cfg.PercentageFee,
		FixedFee:             cfg.FixedFee,
		NetAmount:            net,
		Modality:             cfg.Modality,
		Status:               domain.TransactionPendente,
		PaymentDate:          *order.PaidAt,
		ScheduledReleaseDate: releaseDate,
		Version:              1,
		CreatedAt:            s.now(),
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.repo.FindByOrderID(ctx, order.ID)
		}
		zap.L().Error("failed to create transaction", zap.String("order_id", order.ID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction created",
		zap.String("id", tx.ID),
		zap.String("order_id", tx.OrderID),
		zap.String("modality", string(tx.Modality)),
		zap.Time("release_date", tx.ScheduledReleaseDate),
	)
	return tx, nil
}

// Release advances one transaction to liberado if its release date has been
// reached. It reports whether this call changed the row.
func (s *Service) Release(ctx context.Context, id string, now time.Time) (bool, error) {
	var advanced bool
	err := s.policy("release").Do(ctx, func(ctx context.Context) error {
		advanced = false
		tx, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.NotFoundf("transaction %s", id)
		}
		changed, err := settlement.AdvanceToLiberado(tx, now)
		if err != nil || !changed {
			return err
		}
		if err := s.repo.Update(ctx, tx); err != nil {
			return err
		}
		advanced = true
		return nil
	}, domain.ErrConcurrencyConflict)
	return advanced, err
}

// ConfirmPayout marks a liberado transaction as repassado.
func (s *Service) ConfirmPayout(ctx context.Context, id string, transferredAt time.Time) (*domain.FinancialTransaction, error) {
	return s.mutateLocked(ctx, "payout", id, func(tx *domain.FinancialTransaction) error {
		return settlement.ConfirmPayout(tx, transferredAt)
	})
}

// CancelTransaction cancels a pendente or liberado transaction. The status is
// re-read under a row lock so a concurrent payout cannot be overridden.
func (s *Service) CancelTransaction(ctx context.Context, id string) (*domain.FinancialTransaction, error) {
	return s.mutateLocked(ctx, "cancel", id, func(tx *domain.FinancialTransaction) error {
		return settlement.Cancel(tx, s.now())
	})
}

func (s *Service) mutateLocked(ctx context.Context, operation, id string, transition func(tx *domain.FinancialTransaction) error) (*domain.FinancialTransaction, error) {
	var result *domain.FinancialTransaction
	err := s.policy(operation).Do(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			tx, err := s.repo.FindByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if tx == nil {
				return domain.NotFoundf("transaction %s", id)
			}
			if err := transition(tx); err != nil {
				return err
			}
			if err := s.repo.Update(ctx, tx); err != nil {
				return err
			}
			result = tx
			return nil
		})
	}, domain.ErrConcurrencyConflict)
	if err != nil {
		zap.L().Warn("transaction update rejected", zap.String("operation", operation), zap.String("id", id), zap.Error(err))
		return nil, err
	}

	zap.L().Info("transaction updated", zap.String("operation", operation), zap.String("id", id), zap.String("status", string(result.Status)))
	return result, nil
}
