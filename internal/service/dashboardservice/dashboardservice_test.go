package dashboardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/pkg/money"
)

var now = time.Date(2024, 2, 20, 15, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo, *MockInstallmentRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	transactions := NewMockTransactionRepo(ctrl)
	installments := NewMockInstallmentRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)

	service := New(transactions, installments, txManager)
	service.now = func() time.Time { return now }
	return service, transactions, installments, txManager
}

func TestMetrics(t *testing.T) {
	service, transactions, installments, txManager := NewMock(t)
	filter := domain.TransactionFilter{ResellerID: "reseller-1"}
	transferred := now.Add(-2 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)
	paid := now.AddDate(0, 0, -10)

	txManager.EXPECT().BeginTx(gomock.Any(), pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ pgx.TxOptions, fn pg.TransactionalFn) error { return fn(ctx) })
	transactions.EXPECT().List(gomock.Any(), filter).Return([]domain.FinancialTransaction{
		{Status: domain.TransactionRepassado, NetAmount: money.MustParse("94.50"), TransferredAt: &transferred},
		{Status: domain.TransactionRepassado, NetAmount: money.MustParse("10"), TransferredAt: &yesterday},
		{Status: domain.TransactionLiberado, NetAmount: money.MustParse("20")},
		{Status: domain.TransactionPendente, NetAmount: money.MustParse("30")},
		{Status: domain.TransactionCancelado, NetAmount: money.MustParse("40"), PaymentDate: paid, CancelledAt: &yesterday},
	}, nil)
	installments.EXPECT().ListInstallments(gomock.Any(), filter).Return([]domain.Installment{
		{Status: domain.InstallmentPaga, Amount: money.MustParse("33.33"), DueDate: paid},
		{Status: domain.InstallmentPendente, Amount: money.MustParse("33.33"), DueDate: yesterday},
		{Status: domain.InstallmentPendente, Amount: money.MustParse("33.34"), DueDate: now.AddDate(0, 1, 0)},
	}, nil)

	m, err := service.Metrics(context.Background(), filter)
	require.NoError(t, err)

	assert.True(t, money.MustParse("94.50").Equal(m.ReceivedToday))
	assert.True(t, money.MustParse("20").Equal(m.Released))
	assert.True(t, money.MustParse("30").Equal(m.Pending))
	assert.True(t, money.MustParse("40").Equal(m.Blocked))
	assert.True(t, money.MustParse("33.33").Equal(m.InstallmentsPaid))
	assert.True(t, money.MustParse("33.33").Equal(m.InstallmentsOverdue))
	assert.True(t, money.MustParse("33.34").Equal(m.InstallmentsPending))
	assert.Equal(t, 5, m.TransactionCount)
}

func TestMetrics_Errors(t *testing.T) {
	t.Run("Inverted period", func(t *testing.T) {
		service, _, _, _ := NewMock(t)
		from, to := now, now.AddDate(0, 0, -1)

		_, err := service.Metrics(context.Background(), domain.TransactionFilter{From: &from, To: &to})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Snapshot read fails", func(t *testing.T) {
		service, transactions, _, txManager := NewMock(t)
		txManager.EXPECT().BeginTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ pgx.TxOptions, fn pg.TransactionalFn) error { return fn(ctx) })
		transactions.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("some error"))

		_, err := service.Metrics(context.Background(), domain.TransactionFilter{})
		assert.Error(t, err)
	})
}
