package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
)

type TransactionResponseDTO struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"order_id"`
	ResellerID           string          `json:"reseller_id"`
	UnitID               *string         `json:"unit_id,omitempty"`
	GrossAmount          decimal.Decimal `json:"gross_amount" swaggertype:"string" example:"100"`
	PercentageFee        decimal.Decimal `json:"percentage_fee" swaggertype:"string" example:"6.5"`
	FixedFee             decimal.Decimal `json:"fixed_fee" swaggertype:"string" example:"0.5"`
	NetAmount            decimal.Decimal `json:"net_amount" swaggertype:"string" example:"93"`
	Modality             string          `json:"modality" example:"D+15"`
	Status               string          `json:"status" example:"pendente"`
	PaymentDate          time.Time       `json:"payment_date" example:"2024-03-01T10:00:00Z"`
	ScheduledReleaseDate time.Time       `json:"scheduled_release_date" example:"2024-03-16T10:00:00Z"`
	ReleasedAt           *time.Time      `json:"released_at,omitempty"`
	TransferredAt        *time.Time      `json:"transferred_at,omitempty"`
	CancelledAt          *time.Time      `json:"cancelled_at,omitempty"`
}

// PayoutRequestDTO confirms a transfer. A missing transferred_at means now.
type PayoutRequestDTO struct {
	TransferredAt *time.Time `json:"transferred_at,omitempty" example:"2024-03-17T09:00:00Z"`
}

func TransactionResponse(tx *domain.FinancialTransaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:                   tx.ID,
		OrderID:              tx.OrderID,
		ResellerID:           tx.ResellerID,
		UnitID:               tx.UnitID,
		GrossAmount:          tx.GrossAmount,
		PercentageFee:        tx.PercentageFee,
		FixedFee:             tx.FixedFee,
		NetAmount:            tx.NetAmount,
		Modality:             string(tx.Modality),
		Status:               string(tx.Status),
		PaymentDate:          tx.PaymentDate,
		ScheduledReleaseDate: tx.ScheduledReleaseDate,
		ReleasedAt:           tx.ReleasedAt,
		TransferredAt:        tx.TransferredAt,
		CancelledAt:          tx.CancelledAt,
	}
}
