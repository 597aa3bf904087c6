package delinquencyservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/settlement"
)

//go:generate mockgen -source=delinquencyservice.go -destination=mock_delinquencyservice.go -package=delinquencyservice

type Repo interface {
	ListPlansByClient(ctx context.Context, clientID string) ([]domain.InstallmentPlan, error)
}

type Service struct {
	repo        Repo
	blockOnOpen bool
	now         func() time.Time
}

// New builds the service. With blockOnOpen set, an active plan that still has
// future installments also prevents account deletion.
func New(repo Repo, blockOnOpen bool) *Service {
	return &Service{
		repo:        repo,
		blockOnOpen: blockOnOpen,
		now:         time.Now,
	}
}

func (s *Service) ForClient(ctx context.Context, clientID string) (domain.Delinquency, error) {
	if clientID == "" {
		return domain.Delinquency{}, domain.Validationf("client id is required")
	}
	plans, err := s.repo.ListPlansByClient(ctx, clientID)
	if err != nil {
		zap.L().Error("failed to list plans", zap.String("client_id", clientID), zap.Error(err))
		return domain.Delinquency{}, err
	}
	return settlement.ClientDelinquency(clientID, plans, s.now()), nil
}

// CanDeleteAccount reports whether userID may delete their account and, when
// not, the reason. Overdue is computed at read time so a sweep that has not
// run yet does not let a delinquent user through.
func (s *Service) CanDeleteAccount(ctx context.Context, userID string) (bool, domain.DeletionReason, error) {
	if userID == "" {
		return false, "", domain.Validationf("user id is required")
	}
	plans, err := s.repo.ListPlansByClient(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list plans", zap.String("user_id", userID), zap.Error(err))
		return false, "", err
	}
	allowed, reason := settlement.DeletionEligibility(plans, s.now(), s.blockOnOpen)
	return allowed, reason, nil
}
