package transactionrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

const columns = `id, order_id, reseller_id, unit_id, gross_amount_cents, percentage_fee_hundredths, fixed_fee_cents,
        net_amount_cents, modality, status, payment_date, scheduled_release_date, released_at, transferred_at,
        cancelled_at, version, created_at`

const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row scanner) (*domain.FinancialTransaction, error) {
	var (
		tx                     domain.FinancialTransaction
		gross, pct, fixed, net int64
	)
	err := row.Scan(
		&tx.ID, &tx.OrderID, &tx.ResellerID, &tx.UnitID, &gross, &pct, &fixed,
		&net, &tx.Modality, &tx.Status, &tx.PaymentDate, &tx.ScheduledReleaseDate, &tx.ReleasedAt, &tx.TransferredAt,
		&tx.CancelledAt, &tx.Version, &tx.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	tx.GrossAmount = money.FromCents(gross)
	tx.PercentageFee = money.FromHundredths(pct)
	tx.FixedFee = money.FromCents(fixed)
	tx.NetAmount = money.FromCents(net)
	return &tx, nil
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.FinancialTransaction, error) {
	tx, err := scanTransaction(r.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.FinancialTransaction, error) {
	query := `
        SELECT ` + columns + `
        FROM financial_transactions
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *Repository) FindByIDForUpdate(ctx context.Context, id string) (*domain.FinancialTransaction, error) {
	query := `
        SELECT ` + columns + `
        FROM financial_transactions
        WHERE id = $1
        FOR UPDATE
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) FindByOrderID(ctx context.Context, orderID string) (*domain.FinancialTransaction, error) {
	query := `
        SELECT ` + columns + `
        FROM financial_transactions
        WHERE order_id = $1
    `
	return r.findOne(ctx, query, orderID)
}

// Create inserts a new transaction. A second transaction for the same order
// returns domain.ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, tx *domain.FinancialTransaction) error {
	query := `
        INSERT INTO financial_transactions (id, order_id, reseller_id, unit_id, gross_amount_cents,
            percentage_fee_hundredths, fixed_fee_cents, net_amount_cents, modality, status, payment_date,
            scheduled_release_date, version, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    `
	_, err := r.db.Exec(ctx, query,
		tx.ID, tx.OrderID, tx.ResellerID, tx.UnitID, money.ToCents(tx.GrossAmount),
		money.ToHundredths(tx.PercentageFee), money.ToCents(tx.FixedFee), money.ToCents(tx.NetAmount),
		tx.Modality, tx.Status, tx.PaymentDate, tx.ScheduledReleaseDate, tx.Version, tx.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: transaction for order %s", domain.ErrAlreadyExists, tx.OrderID)
		}
		zap.L().Error("can't create transaction", zap.String("order_id", tx.OrderID), zap.Error(err))
		return err
	}
	return nil
}

// Update persists the status fields guarded by the version the caller read.
// On success tx.Version is bumped; a stale version returns
// domain.ErrConcurrencyConflict. Any release claim is cleared.
func (r *Repository) Update(ctx context.Context, tx *domain.FinancialTransaction) error {
	query := `
        UPDATE financial_transactions
        SET status = $1, released_at = $2, transferred_at = $3, cancelled_at = $4,
            version = version + 1, claimed_by = NULL, claim_expires_at = NULL
        WHERE id = $5 AND version = $6
    `
	tag, err := r.db.Exec(ctx, query,
		tx.Status, tx.ReleasedAt, tx.TransferredAt, tx.CancelledAt, tx.ID, tx.Version,
	)
	if err != nil {
		zap.L().Error("can't update transaction", zap.String("id", tx.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s version %d", domain.ErrConcurrencyConflict, tx.ID, tx.Version)
	}
	tx.Version++
	return nil
}

// ClaimDueForRelease leases up to limit pendente transactions whose release
// date has been reached. Rows already claimed by a live lease or locked by a
// concurrent claimer are skipped.
func (r *Repository) ClaimDueForRelease(ctx context.Context, workerID string, now time.Time, limit int, lease time.Duration) ([]domain.FinancialTransaction, error) {
	query := `
        UPDATE financial_transactions
        SET claimed_by = $1, claim_expires_at = $2
        WHERE id IN (
            SELECT id
            FROM financial_transactions
            WHERE status = 'pendente'
              AND scheduled_release_date <= $3
              AND (claim_expires_at IS NULL OR claim_expires_at < $3)
            ORDER BY scheduled_release_date
            LIMIT $4
            FOR UPDATE SKIP LOCKED
        )
        RETURNING ` + columns

	rows, err := r.db.Query(ctx, query, workerID, now.Add(lease), now, limit)
	if err != nil {
		zap.L().Error("can't claim transactions for release", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

// List returns transactions matching filter ordered by payment date. From and
// To bound payment_date inclusively.
func (r *Repository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, error) {
	where, args := filterClause(filter, "")
	query := `
        SELECT ` + columns + `
        FROM financial_transactions` + where + `
        ORDER BY payment_date
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.FinancialTransaction, error) {
	defer rows.Close()

	var txs []domain.FinancialTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction", zap.Error(err))
			return nil, err
		}
		txs = append(txs, *tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over transactions", zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// filterClause renders filter as a WHERE clause over columns qualified by
// prefix. Placeholders start at $1.
func filterClause(filter domain.TransactionFilter, prefix string) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, prefix, len(args)))
	}
	if filter.ResellerID != "" {
		add("%sreseller_id = $%d", filter.ResellerID)
	}
	if filter.UnitID != "" {
		add("%sunit_id = $%d", filter.UnitID)
	}
	if filter.From != nil {
		add("%spayment_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("%spayment_date <= $%d", *filter.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "\n        WHERE " + strings.Join(conds, " AND "), args
}
