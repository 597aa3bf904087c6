package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/repasse/internal/config"
	"github.com/GlebRadaev/repasse/internal/handlers/jobs"
	"github.com/GlebRadaev/repasse/internal/pg"
	"github.com/GlebRadaev/repasse/internal/repo"
	"github.com/GlebRadaev/repasse/internal/service"
	"github.com/GlebRadaev/repasse/internal/telemetry"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()

	txManager := pg.NewMockTXManager(ctrl)
	services, err := service.New(&config.Config{DefaultModality: "D+30"}, repo.New(mockDB, txManager), txManager, nil)
	require.NoError(t, err)

	h := New(services, jobs.NewMockReleaseRunner(ctrl), jobs.NewMockOverdueRunner(ctrl), telemetry.New())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.ModalityHandler)
	assert.NotNil(t, h.TransactionHandler)
	assert.NotNil(t, h.PlanHandler)
	assert.NotNil(t, h.JobHandler)
	assert.NotNil(t, h.ClientHandler)
	assert.NotNil(t, h.DashboardHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	modality := NewMockModalityHandler(ctrl)
	transactions := NewMockTransactionHandler(ctrl)
	plans := NewMockPlanHandler(ctrl)
	jobHandler := NewMockJobHandler(ctrl)
	clients := NewMockClientHandler(ctrl)
	dashboard := NewMockDashboardHandler(ctrl)

	modality.EXPECT().GetEffective(gomock.Any(), gomock.Any()).AnyTimes()
	modality.EXPECT().Activate(gomock.Any(), gomock.Any()).AnyTimes()
	transactions.EXPECT().CreateForOrder(gomock.Any(), gomock.Any()).AnyTimes()
	transactions.EXPECT().ConfirmPayout(gomock.Any(), gomock.Any()).AnyTimes()
	transactions.EXPECT().Cancel(gomock.Any(), gomock.Any()).AnyTimes()
	plans.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).AnyTimes()
	plans.EXPECT().GetPlan(gomock.Any(), gomock.Any()).AnyTimes()
	plans.EXPECT().CancelPlan(gomock.Any(), gomock.Any()).AnyTimes()
	plans.EXPECT().RecordPayment(gomock.Any(), gomock.Any()).AnyTimes()
	jobHandler.EXPECT().RunReleases(gomock.Any(), gomock.Any()).AnyTimes()
	jobHandler.EXPECT().RunOverdue(gomock.Any(), gomock.Any()).AnyTimes()
	clients.EXPECT().GetDelinquency(gomock.Any(), gomock.Any()).AnyTimes()
	clients.EXPECT().GetDeletionEligibility(gomock.Any(), gomock.Any()).AnyTimes()
	dashboard.EXPECT().GetSettlement(gomock.Any(), gomock.Any()).AnyTimes()

	metrics := telemetry.New()
	h := &Handlers{
		ModalityHandler:    modality,
		TransactionHandler: transactions,
		PlanHandler:        plans,
		JobHandler:         jobHandler,
		ClientHandler:      clients,
		DashboardHandler:   dashboard,
		Metrics:            metrics,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/modality?reseller_id=r-1", http.StatusOK},
		{"PUT", "/api/modality", http.StatusOK},
		{"POST", "/api/orders/o-1/transaction", http.StatusOK},
		{"POST", "/api/transactions/tx-1/payout", http.StatusOK},
		{"POST", "/api/transactions/tx-1/cancel", http.StatusOK},
		{"POST", "/api/plans", http.StatusOK},
		{"GET", "/api/plans/p-1", http.StatusOK},
		{"POST", "/api/plans/p-1/cancel", http.StatusOK},
		{"POST", "/api/installments/i-1/payment", http.StatusOK},
		{"POST", "/api/jobs/releases", http.StatusOK},
		{"POST", "/api/jobs/overdue", http.StatusOK},
		{"GET", "/api/clients/c-1/delinquency", http.StatusOK},
		{"GET", "/api/users/c-1/deletion-eligibility", http.StatusOK},
		{"GET", "/api/dashboard/settlement", http.StatusOK},
		{"DELETE", "/api/plans/p-1", http.StatusMethodNotAllowed},
		{"GET", "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}

	t.Run("GET /metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "repasse_http_requests_total"))
	})
}
