package modalityservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/settlement"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/retry"
)

//go:generate mockgen -source=modalityservice.go -destination=mock_modalityservice.go -package=modalityservice

type Repo interface {
	FindActiveForReseller(ctx context.Context, resellerID string) (*domain.PayoutModalityConfig, error)
	FindActiveForUnit(ctx context.Context, unitID string) (*domain.PayoutModalityConfig, error)
	Activate(ctx context.Context, cfg *domain.PayoutModalityConfig) error
}

type Service struct {
	repo            Repo
	table           settlement.FeeTable
	defaultModality domain.Modality
	retry           retry.Policy
	metrics         *telemetry.Metrics
	now             func() time.Time
}

func New(repo Repo, table settlement.FeeTable, defaultModality domain.Modality, policy retry.Policy, metrics *telemetry.Metrics) *Service {
	return &Service{
		repo:            repo,
		table:           table,
		defaultModality: defaultModality,
		retry:           policy,
		metrics:         metrics,
		now:             time.Now,
	}
}

// ActivateParams describes a new reseller or unit config. Fees may be omitted
// on a reseller config to inherit the platform default for the modality.
type ActivateParams struct {
	Scope         domain.ConfigScope
	ResellerID    string
	UnitID        *string
	Modality      domain.Modality
	PercentageFee *decimal.Decimal
	FixedFee      *decimal.Decimal
}

// Resolve returns the effective modality and fees for an order of resellerID,
// optionally placed through unitID.
func (s *Service) Resolve(ctx context.Context, resellerID string, unitID *string) (domain.ModalityConfig, error) {
	if resellerID == "" {
		return domain.ModalityConfig{}, domain.Validationf("reseller id is required")
	}

	var unit *domain.PayoutModalityConfig
	if unitID != nil && *unitID != "" {
		cfg, err := s.repo.FindActiveForUnit(ctx, *unitID)
		if err != nil {
			zap.L().Error("failed to load unit modality", zap.String("unit_id", *unitID), zap.Error(err))
			return domain.ModalityConfig{}, err
		}
		unit = cfg
	}

	reseller, err := s.repo.FindActiveForReseller(ctx, resellerID)
	if err != nil {
		zap.L().Error("failed to load reseller modality", zap.String("reseller_id", resellerID), zap.Error(err))
		return domain.ModalityConfig{}, err
	}

	return settlement.ResolveModality(unit, reseller, s.table, s.defaultModality)
}

// Activate replaces the owner's active config with a new one. Transactions
// already created keep the modality they were scheduled with.
func (s *Service) Activate(ctx context.Context, p ActivateParams) (*domain.PayoutModalityConfig, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	cfg := &domain.PayoutModalityConfig{
		ID:            uuid.NewString(),
		Scope:         p.Scope,
		ResellerID:    p.ResellerID,
		Modality:      p.Modality,
		PercentageFee: p.PercentageFee,
		FixedFee:      p.FixedFee,
		CreatedAt:     s.now(),
	}
	if p.Scope == domain.ScopeUnit {
		cfg.UnitID = p.UnitID
	}

	// A racing activation trips the one-active-config index; the next attempt
	// deactivates the winner and inserts again.
	policy := s.retry
	policy.OnRetry = func(error) { s.metrics.ConflictRetried("modality_activation") }
	err := policy.Do(ctx, func(ctx context.Context) error {
		return s.repo.Activate(ctx, cfg)
	}, domain.ErrConcurrencyConflict)
	if err != nil {
		zap.L().Error("failed to activate modality", zap.String("reseller_id", p.ResellerID), zap.Error(err))
		return nil, err
	}
	zap.L().Info("modality activated",
		zap.String("scope", string(cfg.Scope)),
		zap.String("reseller_id", cfg.ResellerID),
		zap.String("modality", string(cfg.Modality)),
	)
	return cfg, nil
}

func validate(p ActivateParams) error {
	if p.ResellerID == "" {
		return domain.Validationf("reseller id is required")
	}
	if !p.Modality.Valid() {
		return domain.Validationf("unknown modality %q", p.Modality)
	}
	if (p.PercentageFee == nil) != (p.FixedFee == nil) {
		return domain.Validationf("percentage and fixed fee must be set together")
	}
	if p.PercentageFee != nil {
		if p.PercentageFee.IsNegative() || p.PercentageFee.GreaterThan(decimal.NewFromInt(100)) {
			return domain.Validationf("percentage fee must be between 0 and 100")
		}
		if p.FixedFee.IsNegative() {
			return domain.Validationf("fixed fee must not be negative")
		}
	}

	switch p.Scope {
	case domain.ScopeReseller:
		return nil
	case domain.ScopeUnit:
		if p.UnitID == nil || *p.UnitID == "" {
			return domain.Validationf("unit id is required for a unit override")
		}
		if p.PercentageFee == nil {
			return domain.Validationf("a unit override must carry its own fees")
		}
		return nil
	default:
		return domain.Validationf("scope must be %q or %q", domain.ScopeReseller, domain.ScopeUnit)
	}
}
