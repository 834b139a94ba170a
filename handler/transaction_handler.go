package handler

import (
	"demo-bank-api/common"
	"demo-bank-api/model"
	"demo-bank-api/service"
	"errors"
	"net/http"
)

// TransactionHandler holds dependencies for transaction-related handlers.
type TransactionHandler struct {
	service *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with its dependencies.
func NewTransactionHandler(s *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransfer godoc
// @Summary      Transfer money out of an account
// @Description  Debits the source account and records the transfer. The destination is not checked or credited.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        transfer body model.TransferRequest true "Details of the transfer"
// @Success      200  {object}  model.TransferResponse
// @Failure      400  {object}  common.AppError "Missing fields, invalid amount, amount precision or insufficient balance"
// @Failure      404  {object}  common.AppError "From account not found"
// @Failure      413  {object}  common.AppError "Request body too large"
// @Failure      500  {object}  common.AppError "Internal server error while processing transfer"
// @Router       /api/transactions/transfer [post]
func (h *TransactionHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.TransferRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	result, err := h.service.Transfer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return common.NewAppError(http.StatusBadRequest, common.MsgMissingFields, nil)
		case errors.Is(err, service.ErrInvalidAmount):
			return common.NewAppError(http.StatusBadRequest, "Amount must be greater than 0", nil)
		case errors.Is(err, service.ErrAmountPrecision):
			return common.NewAppError(http.StatusBadRequest, common.MsgAmountPrecision, nil)
		case errors.Is(err, service.ErrSourceAccountNotFound):
			return common.NewAppError(http.StatusNotFound, "From account not found", nil)
		case errors.Is(err, service.ErrInsufficientFunds):
			return common.NewAppError(http.StatusBadRequest, "Insufficient balance", nil)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Transfer failed", err)
		}
	}

	common.WriteJSON(w, http.StatusOK, model.TransferResponse{
		Success:    true,
		Message:    "Transfer successful",
		NewBalance: result.NewBalance,
	})
	return nil
}

// ListHistory godoc
// @Summary      List account transaction history
// @Description  Transfers debited from the account, newest first.
// @Tags         transactions
// @Produce      json
// @Param        accountNumber path string true "Account number"
// @Success      200  {object}  model.HistoryResponse
// @Failure      404  {object}  common.AppError "User not found"
// @Failure      500  {object}  common.AppError
// @Router       /api/transactions/history/{accountNumber} [get]
func (h *TransactionHandler) ListHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	history, err := h.service.History(r.Context(), r.PathValue("accountNumber"))
	if err != nil {
		if errors.Is(err, service.ErrAccountNotFound) {
			return common.NewAppError(http.StatusNotFound, "User not found", nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Failed to fetch history", err)
	}

	common.WriteJSON(w, http.StatusOK, model.HistoryResponse{Success: true, History: history})
	return nil
}
