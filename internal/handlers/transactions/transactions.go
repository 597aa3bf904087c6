package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/GlebRadaev/repasse/internal/domain"
	"github.com/GlebRadaev/repasse/internal/dto"
	"github.com/GlebRadaev/repasse/pkg/utils"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

type Service interface {
	CreateForOrder(ctx context.Context, orderID string) (*domain.FinancialTransaction, error)
	ConfirmPayout(ctx context.Context, id string, transferredAt time.Time) (*domain.FinancialTransaction, error)
	CancelTransaction(ctx context.Context, id string) (*domain.FinancialTransaction, error)
}

type TransactionHandler struct {
	transactionService Service
	now                func() time.Time
}

func New(transactionService Service) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		now:                time.Now,
	}
}

// CreateForOrder godoc
//
//	@Summary		Create the financial transaction of a paid order
//	@Description	Freezes the effective modality and fees on a new pendente transaction. Repeated calls return the existing transaction.
//	@Tags			Transactions
//	@Produce		json
//	@Param			orderID	path		string	true	"Order id"
//	@Success		201		{object}	dto.TransactionResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		422		{object}	utils.Response	"Order not paid or invalid amounts"
//	@Failure		503		{object}	utils.Response	"No fee configured for the modality"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders/{orderID}/transaction [post]
func (h *TransactionHandler) CreateForOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.IDParam(r, "orderID")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	tx, err := h.transactionService.CreateForOrder(r.Context(), orderID)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.TransactionResponse(tx))
}

// ConfirmPayout godoc
//
//	@Summary		Confirm the payout of a released transaction
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Transaction id"
//	@Param			request	body		dto.PayoutRequestDTO	false	"Transfer time, defaults to now"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Transaction not found"
//	@Failure		409		{object}	utils.Response	"Transaction is not liberado"
//	@Failure		422		{object}	utils.Response	"Transfer time before release"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{id}/payout [post]
func (h *TransactionHandler) ConfirmPayout(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}

	var req dto.PayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	transferredAt := h.now()
	if req.TransferredAt != nil {
		transferredAt = *req.TransferredAt
	}

	tx, err := h.transactionService.ConfirmPayout(r.Context(), id, transferredAt)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponse(tx))
}

// Cancel godoc
//
//	@Summary		Cancel a transaction before payout
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path		string	true	"Transaction id"
//	@Success		200	{object}	dto.TransactionResponseDTO
//	@Failure		404	{object}	utils.Response	"Transaction not found"
//	@Failure		409	{object}	utils.Response	"Transaction already paid out or cancelled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{id}/cancel [post]
func (h *TransactionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(r, "id")
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	tx, err := h.transactionService.CancelTransaction(r.Context(), id)
	if err != nil {
		utils.RespondWithDomainError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponse(tx))
}
