package clients

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/dto"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=clients.go -destination=mock_clients.go -package=clients

type Service interface {
	ForClient(ctx context.Context, clientID string) (domain.Delinquency, error)
	CanDeleteAccount(ctx context.Context, userID string) (bool, domain.DeletionReason, error)
}

type ClientHandler struct {
	delinquencyService Service
}

func New(delinquencyService Service) *ClientHandler {
	return &ClientHandler{
		delinquencyService: delinquencyService,
	}
}

// GetDelinquency godoc
//
//	@Summary		Get the delinquency summary of a client
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"Client id"
//	@Success		200	{object}	domain.Delinquency
//	@Failure		422	{object}	utils.Response	"Missing client id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/clients/{id}/delinquency [get]
func (h *ClientHandler) GetDelinquency(w http.ResponseWriter, r *http.Request) {
	d, err := h.delinquencyService.ForClient(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, d)
}

// GetDeletionEligibility godoc
//
//	@Summary		Check whether a user account can be deleted
//	@Description	Deletion is refused while the user has overdue installments, or open plans when the deployment blocks those too.
//	@Tags			Clients
//	@Produce		json
//	@Param			id	path		string	true	"User id"
//	@Success		200	{object}	dto.DeletionEligibilityResponseDTO
//	@Failure		422	{object}	utils.Response	"Missing user id"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/users/{id}/deletion-eligibility [get]
func (h *ClientHandler) GetDeletionEligibility(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	allowed, reason, err := h.delinquencyService.CanDeleteAccount(r.Context(), userID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeletionEligibilityResponseDTO{
		UserID:  userID,
		Allowed: allowed,
		Reason:  string(reason),
	})
}
