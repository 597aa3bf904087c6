package planservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/settlement"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/retry"
)

//go:generate mockgen -source=planservice.go -destination=mock_planservice.go -package=planservice

type Repo interface {
	CreatePlan(ctx context.Context, plan *domain.InstallmentPlan) error
	FindPlanByID(ctx context.Context, id string) (*domain.InstallmentPlan, error)
	FindPlanByIDForUpdate(ctx context.Context, id string) (*domain.InstallmentPlan, error)
	FindPlanByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.InstallmentPlan, error)
	UpdateInstallment(ctx context.Context, inst *domain.Installment) error
	UpdatePlanStatus(ctx context.Context, planID string, status domain.PlanStatus) error
	MarkOverdue(ctx context.Context, now time.Time) ([]string, error)
}

type OrderRepo interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type Service struct {
	repo      Repo
	orders    OrderRepo
	txManager pg.TXManager
	retry     retry.Policy
	metrics   *telemetry.Metrics
	now       func() time.Time
	newID     func() string
}

func New(repo Repo, orders OrderRepo, txManager pg.TXManager, policy retry.Policy, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:      repo,
		orders:    orders,
		txManager: txManager,
		retry:     policy,
		metrics:   metrics,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// CreateInstallmentPlan splits total into count monthly installments starting
// at firstDueDate.
func (s *Service) CreateInstallmentPlan(ctx context.Context, orderID string, total decimal.Decimal, count int, firstDueDate time.Time) (*domain.InstallmentPlan, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to load order", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, domain.NotFoundf("order %s", orderID)
	}
	if order.PaymentMethod != domain.PaymentMethodInstallment {
		return nil, domain.Validationf("order %s is not paid in installments", orderID)
	}

	plan, err := settlement.BuildPlan(*order, total, count, firstDueDate, s.newID)
	if err != nil {
		return nil, err
	}
	plan.CreatedAt = s.now()

	if err := s.repo.CreatePlan(ctx, plan); err != nil {
		zap.L().Error("failed to create installment plan", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("installment plan created",
		zap.String("id", plan.ID),
		zap.String("order_id", orderID),
		zap.Int("installments", count),
	)
	return plan, nil
}

func (s *Service) GetPlan(ctx context.Context, id string) (*domain.InstallmentPlan, error) {
	plan, err := s.repo.FindPlanByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to load installment plan", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if plan == nil {
		return nil, domain.NotFoundf("installment plan %s", id)
	}
	return plan, nil
}

// RecordInstallmentPayment marks the installment paga, late or not, and
// settles the plan in the same transaction when it was the last open one.
func (s *Service) RecordInstallmentPayment(ctx context.Context, installmentID string, paidAt time.Time) (*domain.Installment, error) {
	var paid domain.Installment
	policy := s.retry
	policy.OnRetry = func(error) { s.metrics.ConflictRetried("installment_payment") }

	err := policy.Do(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			plan, err := s.repo.FindPlanByInstallmentIDForUpdate(ctx, installmentID)
			if err != nil {
				return err
			}
			if plan == nil {
				return domain.NotFoundf("installment %s", installmentID)
			}

			changed, settled, err := settlement.MarkPaid(plan, installmentID, paidAt)
			if err != nil {
				return err
			}
			inst := findInstallment(plan, installmentID)
			if changed {
				if err := s.repo.UpdateInstallment(ctx, inst); err != nil {
					return err
				}
			}
			if settled {
				if err := s.repo.UpdatePlanStatus(ctx, plan.ID, domain.PlanQuitado); err != nil {
					return err
				}
				zap.L().Info("installment plan settled", zap.String("plan_id", plan.ID))
			}
			paid = *inst
			return nil
		})
	}, domain.ErrConcurrencyConflict)
	if err != nil {
		zap.L().Warn("installment payment rejected", zap.String("installment_id", installmentID), zap.Error(err))
		return nil, err
	}
	return &paid, nil
}

// CancelPlan cancels an ativo plan after its order was cancelled.
func (s *Service) CancelPlan(ctx context.Context, planID string) (*domain.InstallmentPlan, error) {
	var plan *domain.InstallmentPlan
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		plan, err = s.repo.FindPlanByIDForUpdate(ctx, planID)
		if err != nil {
			return err
		}
		if plan == nil {
			return domain.NotFoundf("installment plan %s", planID)
		}
		if err := settlement.CancelPlan(plan); err != nil {
			return err
		}
		return s.repo.UpdatePlanStatus(ctx, plan.ID, plan.Status)
	})
	if err != nil {
		zap.L().Warn("plan cancellation rejected", zap.String("plan_id", planID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("installment plan cancelled", zap.String("plan_id", planID))
	return plan, nil
}

// RecomputeOverdue persists atrasada for every pendente installment of an
// ativo plan whose due day is before now's day. Running it again is harmless.
func (s *Service) RecomputeOverdue(ctx context.Context, now time.Time) ([]string, error) {
	ids, err := s.repo.MarkOverdue(ctx, now)
	if err != nil {
		zap.L().Error("failed to mark overdue installments", zap.Error(err))
		return nil, err
	}
	s.metrics.OverdueMarked(len(ids))
	if len(ids) > 0 {
		zap.L().Info("installments marked overdue", zap.Int("count", len(ids)))
	}
	return ids, nil
}

func findInstallment(plan *domain.InstallmentPlan, id string) *domain.Installment {
	for i := range plan.Installments {
		if plan.Installments[i].ID == id {
			return &plan.Installments[i]
		}
	}
	return nil
}
