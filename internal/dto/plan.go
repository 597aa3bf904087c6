package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
)

type CreatePlanRequestDTO struct {
	OrderID          string          `json:"order_id" example:"o-1"`
	TotalAmount      decimal.Decimal `json:"total_amount" swaggertype:"string" example:"100"`
	InstallmentCount int             `json:"installment_count" example:"3"`
	FirstDueDate     string          `json:"first_due_date" example:"2024-01-31"`
}

type InstallmentPaymentRequestDTO struct {
	PaidAt *time.Time `json:"paid_at,omitempty" example:"2024-02-01T12:00:00Z"`
}

type InstallmentResponseDTO struct {
	ID      string          `json:"id"`
	PlanID  string          `json:"plan_id"`
	Number  int             `json:"number" example:"1"`
	DueDate string          `json:"due_date" example:"2024-01-31"`
	Amount  decimal.Decimal `json:"amount" swaggertype:"string" example:"33.34"`
	Status  string          `json:"status" example:"pendente"`
	PaidAt  *time.Time      `json:"paid_at,omitempty"`
}

type PlanResponseDTO struct {
	ID               string                   `json:"id"`
	OrderID          string                   `json:"order_id"`
	ClientID         string                   `json:"client_id"`
	TotalAmount      decimal.Decimal          `json:"total_amount" swaggertype:"string" example:"100"`
	InstallmentCount int                      `json:"installment_count" example:"3"`
	Status           string                   `json:"status" example:"ativo"`
	CreatedAt        time.Time                `json:"created_at"`
	Installments     []InstallmentResponseDTO `json:"installments"`
}

// InstallmentResponse reports the status as of now, so an unpaid installment
// past its due day reads atrasada before the sweep persists it.
func InstallmentResponse(i domain.Installment, now time.Time) InstallmentResponseDTO {
	return InstallmentResponseDTO{
		ID:      i.ID,
		PlanID:  i.PlanID,
		Number:  i.Number,
		DueDate: i.DueDate.Format(time.DateOnly),
		Amount:  i.Amount,
		Status:  string(i.EffectiveStatus(now)),
		PaidAt:  i.PaidAt,
	}
}

func PlanResponse(plan *domain.InstallmentPlan, now time.Time) PlanResponseDTO {
	installments := make([]InstallmentResponseDTO, 0, len(plan.Installments))
	for _, i := range plan.Installments {
		resp := InstallmentResponse(i, now)
		// a cancelled plan no longer accrues overdue installments
		if plan.Status == domain.PlanCancelado {
			resp.Status = string(i.Status)
		}
		installments = append(installments, resp)
	}
	return PlanResponseDTO{
		ID:               plan.ID,
		OrderID:          plan.OrderID,
		ClientID:         plan.ClientID,
		TotalAmount:      plan.TotalAmount,
		InstallmentCount: plan.InstallmentCount,
		Status:           string(plan.Status),
		CreatedAt:        plan.CreatedAt,
		Installments:     installments,
	}
}
