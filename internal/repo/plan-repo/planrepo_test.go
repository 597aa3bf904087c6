package planrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

var (
	planColumnNames        = []string{"id", "order_id", "client_id", "total_amount_cents", "installment_count", "status", "created_at"}
	installmentColumnNames = []string{"id", "plan_id", "number", "due_date", "amount_cents", "status", "paid_at", "version"}

	selectInstallments = regexp.QuoteMeta("SELECT " + installmentColumns + " FROM installments i WHERE i.plan_id = $1 ORDER BY i.number")
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(mockDB, mockTxManager), mockDB, mockTxManager
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func planRows(created time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(planColumnNames).
		AddRow("plan-1", "order-1", "client-1", int64(10000), 3, domain.PlanAtivo, created)
}

func installmentRows(first time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(installmentColumnNames).
		AddRow("inst-1", "plan-1", 1, first, int64(3334), domain.InstallmentPaga, &first, int64(2)).
		AddRow("inst-2", "plan-1", 2, first.AddDate(0, 1, 0), int64(3333), domain.InstallmentPendente, nil, int64(1)).
		AddRow("inst-3", "plan-1", 3, first.AddDate(0, 2, 0), int64(3333), domain.InstallmentPendente, nil, int64(1))
}

func TestRepository_CreatePlan(t *testing.T) {
	created := day(2024, 1, 10)
	plan := func() *domain.InstallmentPlan {
		return &domain.InstallmentPlan{
			ID: "plan-1", OrderID: "order-1", ClientID: "client-1", TotalAmount: money.MustParse("100"),
			InstallmentCount: 2, Status: domain.PlanAtivo, CreatedAt: created,
			Installments: []domain.Installment{
				{ID: "inst-1", PlanID: "plan-1", Number: 1, DueDate: day(2024, 2, 10), Amount: money.MustParse("50"), Status: domain.InstallmentPendente},
				{ID: "inst-2", PlanID: "plan-1", Number: 2, DueDate: day(2024, 3, 10), Amount: money.MustParse("50"), Status: domain.InstallmentPendente},
			},
		}
	}
	insertPlan := regexp.QuoteMeta(`INSERT INTO installment_plans (id, order_id, client_id, total_amount_cents, installment_count, status, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	insertInstallment := regexp.QuoteMeta(`INSERT INTO installments (id, plan_id, number, due_date, amount_cents, status, version) VALUES ($1, $2, $3, $4, $5, $6, $7)`)

	t.Run("Plan and installments inserted", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })

		mock.ExpectExec(insertPlan).
			WithArgs("plan-1", "order-1", "client-1", int64(10000), 2, domain.PlanAtivo, created).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(insertInstallment).
			WithArgs("inst-1", "plan-1", 1, day(2024, 2, 10), int64(5000), domain.InstallmentPendente, int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(insertInstallment).
			WithArgs("inst-2", "plan-1", 2, day(2024, 3, 10), int64(5000), domain.InstallmentPendente, int64(1)).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		p := plan()
		require.NoError(t, repo.CreatePlan(context.Background(), p))
		assert.Equal(t, int64(1), p.Installments[1].Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Duplicate order", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })

		mock.ExpectExec(insertPlan).WillReturnError(&pgconn.PgError{Code: "23505"})

		err := repo.CreatePlan(context.Background(), plan())
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("Installment insert fails", func(t *testing.T) {
		repo, mock, txManager := NewMock(t)
		txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) })

		mock.ExpectExec(insertPlan).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(insertInstallment).WillReturnError(errors.New("database error"))

		assert.Error(t, repo.CreatePlan(context.Background(), plan()))
	})
}

func TestRepository_FindPlanByID(t *testing.T) {
	created := day(2024, 1, 10)
	selectPlan := regexp.QuoteMeta("SELECT " + planColumns + " FROM installment_plans p WHERE p.id = $1")

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr bool
		found     bool
	}{
		{
			name: "Plan with installments",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectPlan).WithArgs("plan-1").WillReturnRows(planRows(created))
				mock.ExpectQuery(selectInstallments).WithArgs("plan-1").WillReturnRows(installmentRows(day(2024, 2, 10)))
			},
			found: true,
		},
		{
			name: "Plan does not exist",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectPlan).WithArgs("plan-1").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Installments query fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectPlan).WithArgs("plan-1").WillReturnRows(planRows(created))
				mock.ExpectQuery(selectInstallments).WithArgs("plan-1").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, _ := NewMock(t)
			tt.mockSetup(mock)

			plan, err := repo.FindPlanByID(context.Background(), "plan-1")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if !tt.found {
				assert.Nil(t, plan)
				return
			}
			require.NotNil(t, plan)
			assert.True(t, money.MustParse("100").Equal(plan.TotalAmount))
			require.Len(t, plan.Installments, 3)
			assert.True(t, money.MustParse("33.34").Equal(plan.Installments[0].Amount))
			assert.Equal(t, domain.InstallmentPaga, plan.Installments[0].Status)
			assert.Equal(t, int64(2), plan.Installments[0].Version)
			assert.Nil(t, plan.Installments[1].PaidAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindPlanForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := day(2024, 1, 10)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + planColumns + " FROM installment_plans p JOIN installments i ON i.plan_id = p.id WHERE i.id = $1 FOR UPDATE OF p")).
		WithArgs("inst-2").
		WillReturnRows(planRows(created))
	mock.ExpectQuery(selectInstallments).WithArgs("plan-1").WillReturnRows(installmentRows(day(2024, 2, 10)))

	plan, err := repo.FindPlanByInstallmentIDForUpdate(context.Background(), "inst-2")
	require.NoError(t, err)
	assert.Equal(t, "plan-1", plan.ID)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + planColumns + " FROM installment_plans p WHERE p.id = $1 FOR UPDATE")).
		WithArgs("plan-1").
		WillReturnError(pgx.ErrNoRows)

	plan, err = repo.FindPlanByIDForUpdate(context.Background(), "plan-1")
	assert.NoError(t, err)
	assert.Nil(t, plan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateInstallment(t *testing.T) {
	repo, mock, _ := NewMock(t)
	paid := day(2024, 2, 9)
	update := regexp.QuoteMeta(`UPDATE installments SET status = $1, paid_at = $2, version = version + 1 WHERE id = $3 AND version = $4`)

	inst := &domain.Installment{ID: "inst-1", Status: domain.InstallmentPaga, PaidAt: &paid, Version: 1}
	mock.ExpectExec(update).
		WithArgs(domain.InstallmentPaga, &paid, "inst-1", int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	require.NoError(t, repo.UpdateInstallment(context.Background(), inst))
	assert.Equal(t, int64(2), inst.Version)

	mock.ExpectExec(update).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err := repo.UpdateInstallment(context.Background(), inst)
	assert.ErrorIs(t, err, domain.ErrConcurrencyConflict)
	assert.Equal(t, int64(2), inst.Version)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePlanStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	update := regexp.QuoteMeta(`UPDATE installment_plans SET status = $1 WHERE id = $2`)

	mock.ExpectExec(update).WithArgs(domain.PlanQuitado, "plan-1").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.UpdatePlanStatus(context.Background(), "plan-1", domain.PlanQuitado))

	mock.ExpectExec(update).WithArgs(domain.PlanCancelado, "missing").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	assert.ErrorIs(t, repo.UpdatePlanStatus(context.Background(), "missing", domain.PlanCancelado), domain.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkOverdue(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Date(2024, 2, 11, 9, 30, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`UPDATE installments i SET status = 'atrasada', version = i.version + 1 FROM installment_plans p`)

	mock.ExpectQuery(query).WithArgs("2024-02-11").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow("inst-2").AddRow("inst-5"))
	ids, err := repo.MarkOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, []string{"inst-2", "inst-5"}, ids)

	mock.ExpectQuery(query).WithArgs("2024-02-11").WillReturnRows(pgxmock.NewRows([]string{"id"}))
	ids, err = repo.MarkOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Cutoff is the caller's local day, the same day read-time status uses.
	evening := time.Date(2024, 1, 10, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	mock.ExpectQuery(query).WithArgs("2024-01-10").WillReturnRows(pgxmock.NewRows([]string{"id"}))
	ids, err = repo.MarkOverdue(context.Background(), evening)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.False(t, domain.IsPastDue(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), evening))

	mock.ExpectQuery(query).WillReturnError(errors.New("database error"))
	_, err = repo.MarkOverdue(context.Background(), now)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPlansByClient(t *testing.T) {
	repo, mock, _ := NewMock(t)
	created := day(2024, 1, 10)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + planColumns + " FROM installment_plans p WHERE p.client_id = $1 ORDER BY p.created_at")).
		WithArgs("client-1").
		WillReturnRows(planRows(created))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + installmentColumns + " FROM installments i JOIN installment_plans p ON p.id = i.plan_id WHERE p.client_id = $1 ORDER BY i.plan_id, i.number")).
		WithArgs("client-1").
		WillReturnRows(installmentRows(day(2024, 2, 10)))

	plans, err := repo.ListPlansByClient(context.Background(), "client-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Len(t, plans[0].Installments, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPlansByClient_NoPlans(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + planColumns + " FROM installment_plans p WHERE p.client_id = $1")).
		WithArgs("client-1").
		WillReturnRows(pgxmock.NewRows(planColumnNames))

	plans, err := repo.ListPlansByClient(context.Background(), "client-1")
	assert.NoError(t, err)
	assert.Empty(t, plans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListInstallments(t *testing.T) {
	repo, mock, _ := NewMock(t)
	from := day(2024, 2, 1)
	to := day(2024, 2, 29)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT "+installmentColumns+" FROM installments i JOIN installment_plans p ON p.id = i.plan_id JOIN orders o ON o.id = p.order_id WHERE p.status <> 'cancelado' AND o.reseller_id = $1 AND i.due_date >= $2::date AND i.due_date <= $3::date ORDER BY i.due_date, i.number")).
		WithArgs("reseller-1", "2024-02-01", "2024-02-29").
		WillReturnRows(installmentRows(day(2024, 2, 10)))

	installments, err := repo.ListInstallments(context.Background(), domain.TransactionFilter{ResellerID: "reseller-1", From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, installments, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
