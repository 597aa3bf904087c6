package dashboardservice

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/settlement"
)

//go:generate mockgen -source=dashboardservice.go -destination=mock_dashboardservice.go -package=dashboardservice

type TransactionRepo interface {
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.FinancialTransaction, error)
}

type InstallmentRepo interface {
	ListInstallments(ctx context.Context, filter domain.TransactionFilter) ([]domain.Installment, error)
}

type Service struct {
	transactions TransactionRepo
	installments InstallmentRepo
	txManager    pg.TXManager
	now          func() time.Time
}

func New(transactions TransactionRepo, installments InstallmentRepo, txManager pg.TXManager) *Service {
	return &Service{
		transactions: transactions,
		installments: installments,
		txManager:    txManager,
		now:          time.Now,
	}
}

var snapshot = pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

// Metrics aggregates the filtered ledger. Both reads share one repeatable-read
// snapshot so every transaction is counted in exactly one bucket.
func (s *Service) Metrics(ctx context.Context, filter domain.TransactionFilter) (domain.SettlementMetrics, error) {
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return domain.SettlementMetrics{}, domain.Validationf("from must not be after to")
	}

	var (
		txs          []domain.FinancialTransaction
		installments []domain.Installment
	)
	err := s.txManager.BeginTx(ctx, snapshot, func(ctx context.Context) error {
		var err error
		if txs, err = s.transactions.List(ctx, filter); err != nil {
			return err
		}
		installments, err = s.installments.ListInstallments(ctx, filter)
		return err
	})
	if err != nil {
		zap.L().Error("failed to read settlement snapshot", zap.Error(err))
		return domain.SettlementMetrics{}, err
	}

	return settlement.Aggregate(txs, installments, s.now()), nil
}
