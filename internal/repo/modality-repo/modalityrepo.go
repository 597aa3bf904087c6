package modalityrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

const columns = `id, scope, reseller_id, unit_id, modality, percentage_fee_hundredths, fixed_fee_cents, active, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) findActive(ctx context.Context, query string, key string) (*domain.PayoutModalityConfig, error) {
	var (
		cfg        domain.PayoutModalityConfig
		pct, fixed *int64
	)
	err := r.db.QueryRow(ctx, query, key).Scan(
		&cfg.ID, &cfg.Scope, &cfg.ResellerID, &cfg.UnitID, &cfg.Modality, &pct, &fixed, &cfg.Active, &cfg.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find modality config", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	if pct != nil {
		v := money.FromHundredths(*pct)
		cfg.PercentageFee = &v
	}
	if fixed != nil {
		v := money.FromCents(*fixed)
		cfg.FixedFee = &v
	}
	return &cfg, nil
}

func (r *Repository) FindActiveForReseller(ctx context.Context, resellerID string) (*domain.PayoutModalityConfig, error) {
	query := `
        SELECT ` + columns + `
        FROM payout_modality_configs
        WHERE reseller_id = $1 AND scope = 'reseller' AND active
    `
	return r.findActive(ctx, query, resellerID)
}

func (r *Repository) FindActiveForUnit(ctx context.Context, unitID string) (*domain.PayoutModalityConfig, error) {
	query := `
        SELECT ` + columns + `
        FROM payout_modality_configs
        WHERE unit_id = $1 AND scope = 'unit' AND active
    `
	return r.findActive(ctx, query, unitID)
}

// Activate deactivates the current row for the same owner and inserts cfg as
// the only active one. Two concurrent activations for one owner cannot both
// commit; the loser gets domain.ErrConcurrencyConflict.
func (r *Repository) Activate(ctx context.Context, cfg *domain.PayoutModalityConfig) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		deactivate := `
            UPDATE payout_modality_configs
            SET active = FALSE, deactivated_at = $1
            WHERE reseller_id = $2 AND scope = 'reseller' AND active
        `
		key := cfg.ResellerID
		if cfg.Scope == domain.ScopeUnit {
			deactivate = `
            UPDATE payout_modality_configs
            SET active = FALSE, deactivated_at = $1
            WHERE unit_id = $2 AND scope = 'unit' AND active
        `
			key = *cfg.UnitID
		}
		if _, err := r.db.Exec(ctx, deactivate, cfg.CreatedAt, key); err != nil {
			zap.L().Error("can't deactivate modality config", zap.String("key", key), zap.Error(err))
			return err
		}

		insert := `
            INSERT INTO payout_modality_configs (id, scope, reseller_id, unit_id, modality,
                percentage_fee_hundredths, fixed_fee_cents, active, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, $8)
        `
		_, err := r.db.Exec(ctx, insert,
			cfg.ID, cfg.Scope, cfg.ResellerID, cfg.UnitID, cfg.Modality,
			hundredthsOrNil(cfg), centsOrNil(cfg), cfg.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: concurrent modality activation for %s", domain.ErrConcurrencyConflict, key)
			}
			zap.L().Error("can't insert modality config", zap.String("key", key), zap.Error(err))
			return err
		}
		cfg.Active = true
		return nil
	})
}

func hundredthsOrNil(cfg *domain.PayoutModalityConfig) *int64 {
	if cfg.PercentageFee == nil {
		return nil
	}
	v := money.ToHundredths(*cfg.PercentageFee)
	return &v
}

func centsOrNil(cfg *domain.PayoutModalityConfig) *int64 {
	if cfg.FixedFee == nil {
		return nil
	}
	v := money.ToCents(*cfg.FixedFee)
	return &v
}
