package plans

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/dto"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=plans.go -destination=mock_plans.go -package=plans

type Service interface {
	CreateInstallmentPlan(ctx context.Context, orderID string, total decimal.Decimal, count int, firstDueDate time.Time) (*domain.InstallmentPlan, error)
	GetPlan(ctx context.Context, id string) (*domain.InstallmentPlan, error)
	RecordInstallmentPayment(ctx context.Context, installmentID string, paidAt time.Time) (*domain.Installment, error)
	CancelPlan(ctx context.Context, planID string) (*domain.InstallmentPlan, error)
}

type PlanHandler struct {
	planService Service
	now         func() time.Time
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		now:         time.Now,
	}
}

// CreatePlan godoc
//
//	@Summary		Create an installment plan
//	@Description	Splits the total into monthly installments. The last installment absorbs the remainder cents.
//	@Tags			Plans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePlanRequestDTO	true	"Plan parameters"
//	@Success		201		{object}	dto.PlanResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order already has a plan"
//	@Failure		422		{object}	utils.Response	"Invalid amount or count"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/plans [post]
func (h *PlanHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	firstDue, err := time.Parse(time.DateOnly, req.FirstDueDate)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "first_due_date must be YYYY-MM-DD")
		return
	}
	if _, err := uuid.Parse(req.OrderID); err != nil {
		utils.RespondWithDomainError(w, domain.NotFoundf("order %q", req.OrderID))
		return
	}

	plan, err := h.planService.CreateInstallmentPlan(r.Context(), req.OrderID, req.TotalAmount, req.InstallmentCount, firstDue)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PlanResponse(plan, h.now()))
}

// GetPlan godoc
//
//	@Summary		Get an installment plan
//	@Description	Installment statuses are reported as of the request time.
//	@Tags			Plans
//	@Produce		json
//	@Param			id	path		string	true	"Plan id"
//	@Success		200	{object}	dto.PlanResponseDTO
//	@Failure		404	{object}	utils.Response	"Plan not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/plans/{id} [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	plan, err := h.planService.GetPlan(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlanResponse(plan, h.now()))
}

// CancelPlan godoc
//
//	@Summary		Cancel an active installment plan
//	@Tags			Plans
//	@Produce		json
//	@Param			id	path		string	true	"Plan id"
//	@Success		200	{object}	dto.PlanResponseDTO
//	@Failure		404	{object}	utils.Response	"Plan not found"
//	@Failure		409	{object}	utils.Response	"Plan is not ativo"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/plans/{id}/cancel [post]
func (h *PlanHandler) CancelPlan(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	plan, err := h.planService.CancelPlan(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlanResponse(plan, h.now()))
}

// RecordPayment godoc
//
//	@Summary		Record an installment payment
//	@Description	Paying an already paid installment is a no-op. The plan becomes quitado when its last installment is paid.
//	@Tags			Plans
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Installment id"
//	@Param			request	body		dto.InstallmentPaymentRequestDTO	false	"Payment time, defaults to now"
//	@Success		200		{object}	dto.InstallmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Installment not found"
//	@Failure		409		{object}	utils.Response	"Plan is not ativo"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/installments/{id}/payment [post]
func (h *PlanHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	var req dto.InstallmentPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	now := h.now()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	installment, err := h.planService.RecordInstallmentPayment(r.Context(), id, paidAt)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.InstallmentResponse(*installment, now))
}
