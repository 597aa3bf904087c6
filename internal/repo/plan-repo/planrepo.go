package planrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

const (
	planColumns        = `p.id, p.order_id, p.client_id, p.total_amount_cents, p.installment_count, p.status, p.created_at`
	installmentColumns = `i.id, i.plan_id, i.number, i.due_date, i.amount_cents, i.status, i.paid_at, i.version`
)

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

type scanner interface {
	Scan(dest ...any) error
}

func scanPlan(row scanner) (*domain.InstallmentPlan, error) {
	var (
		plan  domain.InstallmentPlan
		total int64
	)
	if err := row.Scan(&plan.ID, &plan.OrderID, &plan.ClientID, &total, &plan.InstallmentCount, &plan.Status, &plan.CreatedAt); err != nil {
		return nil, err
	}
	plan.TotalAmount = money.FromCents(total)
	return &plan, nil
}

func scanInstallment(row scanner) (*domain.Installment, error) {
	var (
		inst   domain.Installment
		amount int64
	)
	if err := row.Scan(&inst.ID, &inst.PlanID, &inst.Number, &inst.DueDate, &amount, &inst.Status, &inst.PaidAt, &inst.Version); err != nil {
		return nil, err
	}
	inst.Amount = money.FromCents(amount)
	return &inst, nil
}

// CreatePlan stores the plan and all its installments atomically. A second
// plan for the same order returns domain.ErrAlreadyExists.
func (r *Repository) CreatePlan(ctx context.Context, plan *domain.InstallmentPlan) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		query := `
            INSERT INTO installment_plans (id, order_id, client_id, total_amount_cents, installment_count, status, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		_, err := r.db.Exec(ctx, query,
			plan.ID, plan.OrderID, plan.ClientID, money.ToCents(plan.TotalAmount), plan.InstallmentCount, plan.Status, plan.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("%w: installment plan for order %s", domain.ErrAlreadyExists, plan.OrderID)
			}
			zap.L().Error("can't create installment plan", zap.String("order_id", plan.OrderID), zap.Error(err))
			return err
		}

		insert := `
            INSERT INTO installments (id, plan_id, number, due_date, amount_cents, status, version)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		for i := range plan.Installments {
			inst := &plan.Installments[i]
			if inst.Version == 0 {
				inst.Version = 1
			}
			_, err := r.db.Exec(ctx, insert,
				inst.ID, plan.ID, inst.Number, inst.DueDate, money.ToCents(inst.Amount), inst.Status, inst.Version,
			)
			if err != nil {
				zap.L().Error("can't create installment", zap.String("plan_id", plan.ID), zap.Int("number", inst.Number), zap.Error(err))
				return err
			}
		}
		return nil
	})
}

func (r *Repository) FindPlanByID(ctx context.Context, id string) (*domain.InstallmentPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM installment_plans p
        WHERE p.id = $1
    `
	return r.findPlan(ctx, query, id)
}

// FindPlanByIDForUpdate locks the plan row until the surrounding transaction ends.
func (r *Repository) FindPlanByIDForUpdate(ctx context.Context, id string) (*domain.InstallmentPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM installment_plans p
        WHERE p.id = $1
        FOR UPDATE
    `
	return r.findPlan(ctx, query, id)
}

// FindPlanByInstallmentIDForUpdate locks the plan owning installmentID so that
// concurrent payments on the same plan are serialized.
func (r *Repository) FindPlanByInstallmentIDForUpdate(ctx context.Context, installmentID string) (*domain.InstallmentPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM installment_plans p
        JOIN installments i ON i.plan_id = p.id
        WHERE i.id = $1
        FOR UPDATE OF p
    `
	return r.findPlan(ctx, query, installmentID)
}

func (r *Repository) findPlan(ctx context.Context, query string, key string) (*domain.InstallmentPlan, error) {
	plan, err := scanPlan(r.db.QueryRow(ctx, query, key))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find installment plan", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	installments, err := r.listInstallments(ctx, `
        SELECT `+installmentColumns+`
        FROM installments i
        WHERE i.plan_id = $1
        ORDER BY i.number
    `, plan.ID)
	if err != nil {
		return nil, err
	}
	plan.Installments = installments
	return plan, nil
}

// UpdateInstallment persists status and paid_at guarded by the version the
// caller read, bumping inst.Version on success.
func (r *Repository) UpdateInstallment(ctx context.Context, inst *domain.Installment) error {
	query := `
        UPDATE installments
        SET status = $1, paid_at = $2, version = version + 1
        WHERE id = $3 AND version = $4
    `
	tag, err := r.db.Exec(ctx, query, inst.Status, inst.PaidAt, inst.ID, inst.Version)
	if err != nil {
		zap.L().Error("can't update installment", zap.String("id", inst.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: installment %s version %d", domain.ErrConcurrencyConflict, inst.ID, inst.Version)
	}
	inst.Version++
	return nil
}

func (r *Repository) UpdatePlanStatus(ctx context.Context, planID string, status domain.PlanStatus) error {
	query := `
        UPDATE installment_plans
        SET status = $1
        WHERE id = $2
    `
	tag, err := r.db.Exec(ctx, query, status, planID)
	if err != nil {
		zap.L().Error("can't update installment plan", zap.String("id", planID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("installment plan %s", planID)
	}
	return nil
}

// MarkOverdue flips every pendente installment of an ativo plan whose due day
// is before now's day to atrasada and returns the affected ids.
func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) ([]string, error) {
	query := `
        UPDATE installments i
        SET status = 'atrasada', version = i.version + 1
        FROM installment_plans p
        WHERE i.plan_id = p.id
          AND p.status = 'ativo'
          AND i.status = 'pendente'
          AND i.due_date < $1::date
        RETURNING i.id
    `
	rows, err := r.db.Query(ctx, query, domain.CalendarDay(now))
	if err != nil {
		zap.L().Error("can't mark overdue installments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan installment id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over overdue installments", zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// ListPlansByClient returns every plan of the client with its installments.
func (r *Repository) ListPlansByClient(ctx context.Context, clientID string) ([]domain.InstallmentPlan, error) {
	query := `
        SELECT ` + planColumns + `
        FROM installment_plans p
        WHERE p.client_id = $1
        ORDER BY p.created_at
    `
	rows, err := r.db.Query(ctx, query, clientID)
	if err != nil {
		zap.L().Error("can't list installment plans", zap.String("client_id", clientID), zap.Error(err))
		return nil, err
	}

	var plans []domain.InstallmentPlan
	index := make(map[string]int)
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			rows.Close()
			zap.L().Error("can't scan installment plan", zap.Error(err))
			return nil, err
		}
		index[plan.ID] = len(plans)
		plans = append(plans, *plan)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over installment plans", zap.Error(err))
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}

	installments, err := r.listInstallments(ctx, `
        SELECT `+installmentColumns+`
        FROM installments i
        JOIN installment_plans p ON p.id = i.plan_id
        WHERE p.client_id = $1
        ORDER BY i.plan_id, i.number
    `, clientID)
	if err != nil {
		return nil, err
	}
	for _, inst := range installments {
		if idx, ok := index[inst.PlanID]; ok {
			plans[idx].Installments = append(plans[idx].Installments, inst)
		}
	}
	return plans, nil
}

// ListInstallments returns installments whose order matches filter. From and
// To bound the due date inclusively.
func (r *Repository) ListInstallments(ctx context.Context, filter domain.TransactionFilter) ([]domain.Installment, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.ResellerID != "" {
		add("o.reseller_id = $%d", filter.ResellerID)
	}
	if filter.UnitID != "" {
		add("o.unit_id = $%d", filter.UnitID)
	}
	if filter.From != nil {
		add("i.due_date >= $%d::date", filter.From.Format(time.DateOnly))
	}
	if filter.To != nil {
		add("i.due_date <= $%d::date", filter.To.Format(time.DateOnly))
	}

	query := `
        SELECT ` + installmentColumns + `
        FROM installments i
        JOIN installment_plans p ON p.id = i.plan_id
        JOIN orders o ON o.id = p.order_id
        WHERE p.status <> 'cancelado'`
	for _, cond := range conds {
		query += " AND " + cond
	}
	query += `
        ORDER BY i.due_date, i.number
    `
	return r.listInstallments(ctx, query, args...)
}

func (r *Repository) listInstallments(ctx context.Context, query string, args ...any) ([]domain.Installment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list installments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var installments []domain.Installment
	for rows.Next() {
		inst, err := scanInstallment(rows)
		if err != nil {
			zap.L().Error("can't scan installment", zap.Error(err))
			return nil, err
		}
		installments = append(installments, *inst)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over installments", zap.Error(err))
		return nil, err
	}
	return installments, nil
}
