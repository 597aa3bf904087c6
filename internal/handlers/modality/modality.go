package modality

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/dto"
	"github.com/GlebRadaev/repasse/internal/service/modalityservice"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=modality.go -destination=mock_modality.go -package=modality

type Service interface {
	Resolve(ctx context.Context, resellerID string, unitID *string) (domain.ModalityConfig, error)
	Activate(ctx context.Context, p modalityservice.ActivateParams) (*domain.PayoutModalityConfig, error)
}

type ModalityHandler struct {
	modalityService Service
}

func New(modalityService Service) *ModalityHandler {
	return &ModalityHandler{
		modalityService: modalityService,
	}
}

// GetEffective godoc
//
//	@Summary		Resolve the effective payout modality
//	@Description	Returns the modality and fees that would be frozen on a new transaction of the reseller or unit.
//	@Tags			Modality
//	@Produce		json
//	@Param			reseller_id	query		string							true	"Reseller id"
//	@Param			unit_id		query		string							false	"Unit id"
//	@Success		200			{object}	dto.EffectiveModalityResponseDTO
//	@Failure		422			{object}	utils.Response	"Missing reseller id"
//	@Failure		503			{object}	utils.Response	"No fee configured for the modality"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/modality [get]
func (h *ModalityHandler) GetEffective(w http.ResponseWriter, r *http.Request) {
	resellerID := r.URL.Query().Get("reseller_id")
	var unitID *string
	if u := r.URL.Query().Get("unit_id"); u != "" {
		unitID = &u
	}

	cfg, err := h.modalityService.Resolve(r.Context(), resellerID, unitID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.EffectiveModalityResponse(cfg))
}

// Activate godoc
//
//	@Summary		Activate a payout modality
//	@Description	Deactivates the current configuration of the reseller or unit and activates the new one atomically.
//	@Tags			Modality
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ActivateModalityRequestDTO	true	"Modality configuration"
//	@Success		200		{object}	dto.ModalityConfigResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Concurrent activation kept conflicting after retries"
//	@Failure		422		{object}	utils.Response	"Invalid configuration"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/modality [put]
func (h *ModalityHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req dto.ActivateModalityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.modalityService.Activate(r.Context(), modalityservice.ActivateParams{
		Scope:         domain.ConfigScope(req.Scope),
		ResellerID:    req.ResellerID,
		UnitID:        req.UnitID,
		Modality:      domain.Modality(req.Modality),
		PercentageFee: req.PercentageFee,
		FixedFee:      req.FixedFee,
	})
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ModalityConfigResponse(cfg))
}
