package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/repasse/internal/domain"
)

type EffectiveModalityResponseDTO struct {
	Scope         string          `json:"scope" example:"reseller"`
	Modality      string          `json:"modality" example:"D+15"`
	PercentageFee decimal.Decimal `json:"percentage_fee" swaggertype:"string" example:"6.5"`
	FixedFee      decimal.Decimal `json:"fixed_fee" swaggertype:"string" example:"0.5"`
}

// ActivateModalityRequestDTO replaces the active configuration of a reseller
// or unit. Fees are given together or not at all.
type ActivateModalityRequestDTO struct {
	Scope         string           `json:"scope" example:"reseller"`
	ResellerID    string           `json:"reseller_id" example:"r-1"`
	UnitID        *string          `json:"unit_id,omitempty" example:"u-1"`
	Modality      string           `json:"modality" example:"D+15"`
	PercentageFee *decimal.Decimal `json:"percentage_fee,omitempty" swaggertype:"string" example:"6.5"`
	FixedFee      *decimal.Decimal `json:"fixed_fee,omitempty" swaggertype:"string" example:"0.5"`
}

type ModalityConfigResponseDTO struct {
	ID            string           `json:"id"`
	Scope         string           `json:"scope" example:"reseller"`
	ResellerID    string           `json:"reseller_id" example:"r-1"`
	UnitID        *string          `json:"unit_id,omitempty"`
	Modality      string           `json:"modality" example:"D+15"`
	PercentageFee *decimal.Decimal `json:"percentage_fee,omitempty" swaggertype:"string" example:"6.5"`
	FixedFee      *decimal.Decimal `json:"fixed_fee,omitempty" swaggertype:"string" example:"0.5"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"created_at" example:"2024-03-01T10:00:00Z"`
}

func EffectiveModalityResponse(cfg domain.ModalityConfig) EffectiveModalityResponseDTO {
	return EffectiveModalityResponseDTO{
		Scope:         string(cfg.Scope),
		Modality:      string(cfg.Modality),
		PercentageFee: cfg.PercentageFee,
		FixedFee:      cfg.FixedFee,
	}
}

func ModalityConfigResponse(cfg *domain.PayoutModalityConfig) ModalityConfigResponseDTO {
	return ModalityConfigResponseDTO{
		ID:            cfg.ID,
		Scope:         string(cfg.Scope),
		ResellerID:    cfg.ResellerID,
		UnitID:        cfg.UnitID,
		Modality:      string(cfg.Modality),
		PercentageFee: cfg.PercentageFee,
		FixedFee:      cfg.FixedFee,
		Active:        cfg.Active,
		CreatedAt:     cfg.CreatedAt,
	}
}
