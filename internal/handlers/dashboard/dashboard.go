package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=dashboard.go -destination=mock_dashboard.go -package=dashboard

type Service interface {
	Metrics(ctx context.Context, filter domain.TransactionFilter) (domain.SettlementMetrics, error)
}

type DashboardHandler struct {
	dashboardService Service
}

func New(dashboardService Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetSettlement godoc
//
//	@Summary		Settlement dashboard metrics
//	@Description	Received today, released, pending and blocked amounts plus installment totals, read from one snapshot.
//	@Tags			Dashboard
//	@Produce		json
//	@Param			reseller_id	query		string	false	"Reseller id"
//	@Param			unit_id		query		string	false	"Unit id"
//	@Param			from		query		string	false	"Start date, YYYY-MM-DD"
//	@Param			to			query		string	false	"End date, YYYY-MM-DD, inclusive"
//	@Success		200			{object}	domain.SettlementMetrics
//	@Failure		400			{object}	utils.Response	"Malformed date"
//	@Failure		422			{object}	utils.Response	"from is after to"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/dashboard/settlement [get]
func (h *DashboardHandler) GetSettlement(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TransactionFilter{
		ResellerID: q.Get("reseller_id"),
		UnitID:     q.Get("unit_id"),
	}

	from, err := parseDate(q.Get("from"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "from must be YYYY-MM-DD")
		return
	}
	to, err := parseDate(q.Get("to"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "to must be YYYY-MM-DD")
		return
	}
	filter.From = from
	if to != nil {
		// inclusive of the whole last day
		end := to.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}

	metrics, err := h.dashboardService.Metrics(r.Context(), filter)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, metrics)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
