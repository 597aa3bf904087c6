package modalityservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/settlement"
	"github.com/GlebRadaev/repasse/pkg/money"
	"github.com/GlebRadaev/repasse/pkg/retry"
)

func ptr[T any](v T) *T { return &v }

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, settlement.DefaultFeeTable(), domain.ModalityD30, retry.Policy{Attempts: 2, BaseDelay: time.Microsecond}, nil)
	service.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return service, repo
}

func TestResolve(t *testing.T) {
	service, repo := NewMock(t)
	unitFees := &domain.PayoutModalityConfig{
		Scope: domain.ScopeUnit, Modality: domain.ModalityD1, Active: true,
		PercentageFee: ptr(money.MustParse("4")), FixedFee: ptr(money.MustParse("0.25")),
	}
	resellerNoFees := &domain.PayoutModalityConfig{Scope: domain.ScopeReseller, Modality: domain.ModalityD15, Active: true}

	tests := []struct {
		name        string
		unitID      *string
		prepareMock func()
		expected    domain.ModalityConfig
		expectedErr error
		anyErr      bool
	}{
		{
			name:   "Unit override wins",
			unitID: ptr("unit-1"),
			prepareMock: func() {
				repo.EXPECT().FindActiveForUnit(gomock.Any(), "unit-1").Return(unitFees, nil)
				repo.EXPECT().FindActiveForReseller(gomock.Any(), "reseller-1").Return(resellerNoFees, nil)
			},
			expected: domain.ModalityConfig{Scope: domain.ScopeUnit, Modality: domain.ModalityD1, PercentageFee: money.MustParse("4"), FixedFee: money.MustParse("0.25")},
		},
		{
			name:   "Reseller without fees inherits the platform fee",
			unitID: ptr("unit-2"),
			prepareMock: func() {
				repo.EXPECT().FindActiveForUnit(gomock.Any(), "unit-2").Return(nil, nil)
				repo.EXPECT().FindActiveForReseller(gomock.Any(), "reseller-1").Return(resellerNoFees, nil)
			},
			expected: domain.ModalityConfig{Scope: domain.ScopeReseller, Modality: domain.ModalityD15, PercentageFee: money.MustParse("6.5"), FixedFee: money.MustParse("0.50")},
		},
		{
			name: "Platform default",
			prepareMock: func() {
				repo.EXPECT().FindActiveForReseller(gomock.Any(), "reseller-1").Return(nil, nil)
			},
			expected: domain.ModalityConfig{Scope: domain.ScopePlatform, Modality: domain.ModalityD30, PercentageFee: money.MustParse("5"), FixedFee: money.MustParse("0.50")},
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().FindActiveForReseller(gomock.Any(), "reseller-1").Return(nil, errors.New("some error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			cfg, err := service.Resolve(context.Background(), "reseller-1", tt.unitID)
			if tt.anyErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Scope, cfg.Scope)
			assert.Equal(t, tt.expected.Modality, cfg.Modality)
			assert.True(t, tt.expected.PercentageFee.Equal(cfg.PercentageFee))
			assert.True(t, tt.expected.FixedFee.Equal(cfg.FixedFee))
		})
	}
}

func TestResolve_FailsClosedWithoutFeeTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, settlement.FeeTable{}, domain.ModalityD30, retry.Policy{Attempts: 2, BaseDelay: time.Microsecond}, nil)

	repo.EXPECT().FindActiveForReseller(gomock.Any(), "reseller-1").Return(nil, nil)

	_, err := service.Resolve(context.Background(), "reseller-1", nil)
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestResolve_RequiresReseller(t *testing.T) {
	service, _ := NewMock(t)
	_, err := service.Resolve(context.Background(), "", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestActivate(t *testing.T) {
	service, repo := NewMock(t)
	fee := func(s string) *decimal.Decimal { return ptr(money.MustParse(s)) }

	tests := []struct {
		name        string
		params      ActivateParams
		prepareMock func()
		expectedErr error
		anyErr      bool
	}{
		{
			name:   "Reseller config with fees",
			params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD15, PercentageFee: fee("6"), FixedFee: fee("0.40")},
			prepareMock: func() {
				repo.EXPECT().Activate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg *domain.PayoutModalityConfig) error {
					assert.NotEmpty(t, cfg.ID)
					assert.Nil(t, cfg.UnitID)
					assert.Equal(t, domain.ModalityD15, cfg.Modality)
					cfg.Active = true
					return nil
				})
			},
		},
		{
			name:   "Reseller config inheriting fees",
			params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1},
			prepareMock: func() {
				repo.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Unit override",
			params: ActivateParams{Scope: domain.ScopeUnit, ResellerID: "reseller-1", UnitID: ptr("unit-1"), Modality: domain.ModalityD1, PercentageFee: fee("8"), FixedFee: fee("0")},
			prepareMock: func() {
				repo.EXPECT().Activate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cfg *domain.PayoutModalityConfig) error {
					assert.Equal(t, "unit-1", *cfg.UnitID)
					return nil
				})
			},
		},
		{name: "Unknown modality", params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: "D+7"}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Missing reseller", params: ActivateParams{Scope: domain.ScopeReseller, Modality: domain.ModalityD1}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Half a fee pair", params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1, PercentageFee: fee("5")}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Percentage above 100", params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1, PercentageFee: fee("101"), FixedFee: fee("0")}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Negative fixed fee", params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1, PercentageFee: fee("1"), FixedFee: fee("-1")}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Unit without id", params: ActivateParams{Scope: domain.ScopeUnit, ResellerID: "reseller-1", Modality: domain.ModalityD1, PercentageFee: fee("1"), FixedFee: fee("0")}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Unit without fees", params: ActivateParams{Scope: domain.ScopeUnit, ResellerID: "reseller-1", UnitID: ptr("unit-1"), Modality: domain.ModalityD1}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{name: "Platform scope is not writable", params: ActivateParams{Scope: domain.ScopePlatform, ResellerID: "reseller-1", Modality: domain.ModalityD1}, prepareMock: func() {}, expectedErr: domain.ErrValidation},
		{
			name:   "Concurrent activation is retried",
			params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1},
			prepareMock: func() {
				gomock.InOrder(
					repo.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(domain.ErrConcurrencyConflict),
					repo.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(nil),
				)
			},
		},
		{
			name:   "Conflict persists after retries",
			params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1},
			prepareMock: func() {
				repo.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(domain.ErrConcurrencyConflict).Times(3)
			},
			expectedErr: domain.ErrConcurrencyConflict,
		},
		{
			name:   "Storage error is not retried",
			params: ActivateParams{Scope: domain.ScopeReseller, ResellerID: "reseller-1", Modality: domain.ModalityD1},
			prepareMock: func() {
				repo.EXPECT().Activate(gomock.Any(), gomock.Any()).Return(errors.New("db down")).Times(1)
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			cfg, err := service.Activate(context.Background(), tt.params)
			if tt.anyErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params.Scope, cfg.Scope)
			assert.Equal(t, service.now(), cfg.CreatedAt)
		})
	}
}
