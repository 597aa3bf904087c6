package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
        SELECT id, reseller_id, unit_id, client_id, gross_amount_cents, payment_method, paid_at, created_at
        FROM orders
        WHERE id = $1
    `
	var (
		order      domain.Order
		grossCents int64
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.ResellerID, &order.UnitID, &order.ClientID,
		&grossCents, &order.PaymentMethod, &order.PaidAt, &order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}
	order.GrossAmount = money.FromCents(grossCents)
	return &order, nil
}
