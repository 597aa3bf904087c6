package service

import (
	"fmt"

	"github.com/GlebRadaev/repasse/internal/config"
	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/repo"
	"github.com/GlebRadaev/repasse/internal/service/dashboardservice"
	"github.com/GlebRadaev/repasse/internal/service/delinquencyservice"
	"github.com/GlebRadaev/repasse/internal/service/modalityservice"
	"github.com/GlebRadaev/repasse/internal/service/planservice"
	"github.com/GlebRadaev/repasse/internal/service/transactionservice"
	"github.com/GlebRadaev/repasse/internal/settlement"
	"github.com/GlebRadaev/repasse/internal/telemetry"
	"github.com/GlebRadaev/repasse/pkg/retry"
)

type Services struct {
	ModalityService    *modalityservice.Service
	TransactionService *transactionservice.Service
	PlanService        *planservice.Service
	DelinquencyService *delinquencyservice.Service
	DashboardService   *dashboardservice.Service
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, metrics *telemetry.Metrics) (*Services, error) {
	table, err := settlement.ParseFeeTable(cfg.PlatformFees)
	if err != nil {
		return nil, fmt.Errorf("PLATFORM_FEES: %w", err)
	}
	policy := retry.Policy{
		Attempts:  cfg.RetryAttempts,
		BaseDelay: cfg.RetryBaseDelay,
	}

	modalityService := modalityservice.New(repos.ModalityRepo, table, domain.Modality(cfg.DefaultModality), policy, metrics)
	transactionService := transactionservice.New(repos.TransactionRepo, repos.OrderRepo, modalityService, txManager, policy, metrics)
	planService := planservice.New(repos.PlanRepo, repos.OrderRepo, txManager, policy, metrics)
	delinquencyService := delinquencyservice.New(repos.PlanRepo, cfg.BlockDeletionOnOpenPlans)
	dashboardService := dashboardservice.New(repos.TransactionRepo, repos.PlanRepo, txManager)

	return &Services{
		ModalityService:    modalityService,
		TransactionService: transactionService,
		PlanService:        planService,
		DelinquencyService: delinquencyService,
		DashboardService:   dashboardService,
	}, nil
}
