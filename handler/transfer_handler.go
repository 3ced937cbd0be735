package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"

	"github.com/sirupsen/logrus"
)

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	service *service.TransferService
}

// NewTransferHandler creates a new TransferHandler with its dependencies.
func NewTransferHandler(s *service.TransferService) *TransferHandler {
	return &TransferHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer funds between accounts
// @Description  Atomically moves the given amount from one account to another, identified by their account numbers. The operation is not idempotent.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the fund transfer"
// @Success      200  {object}  model.TransferResult
// @Failure      400  {object}  common.AppError "Bad Request (e.g., insufficient funds, currency mismatch, invalid amount, inactive account, self transfer)"
// @Failure      404  {object}  common.AppError "Source or destination account not found"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /accounts/transfer [post]
func (h *TransferHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"from_account_number": req.FromAccountNumber,
		"to_account_number":   req.ToAccountNumber,
		"amount":              req.Amount.String(),
	})
	log.Info("Fund transfer request received")

	result, err := h.service.TransferFunds(r.Context(), req)
	if err != nil {
		return mapDomainError(err, "Could not process transfer")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
	return nil
}
