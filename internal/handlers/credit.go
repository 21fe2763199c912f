package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/services"
)

// BalanceCreditor defines the interface that the service must implement.
type BalanceCreditor interface {
	Credit(ctx context.Context, userID string, amount int64) (int64, error)
}

// CreditRequest represents the JSON body for crediting a gift balance
// swagger:model CreditRequest
type CreditRequest struct {
	// Account identifier
	// required: true
	// example: 331077825641
	UserID string `json:"user_id"`

	// Amount to credit, must be a positive integer
	// required: true
	// example: 500
	Amount int64 `json:"amount"`
}

// CreditResponse represents a successful credit response
// swagger:model CreditResponse
type CreditResponse struct {
	// Success message
	// example: Balance credited successfully
	Message string `json:"message"`

	// New balance of the account
	NewBalance int64 `json:"new_balance"`
}

// CreditErrorResponse represents an error response for credit
// swagger:model CreditErrorResponse
type CreditErrorResponse struct {
	// Error message
	// example: Invalid amount
	Error string `json:"error"`
}

// NewCreditHandler returns an HTTP handler for crediting a gift balance.
// @Summary Credit gift balance
// @Description Adds a positive integer amount to an account's gift balance
// @Tags balance
// @Accept json
// @Produce json
// @Param request body handlers.CreditRequest true "Credit Request"
// @Success 200 {object} handlers.CreditResponse "Balance credited successfully"
// @Failure 400 {object} handlers.CreditErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.CreditErrorResponse "Unauthorized"
// @Router /balance/credit [post]
// @Security BearerAuth
func NewCreditHandler(svc BalanceCreditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CreditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode credit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreditErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == "" {
			logger.Log.Warnw("credit request without user id")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreditErrorResponse{Error: "Missing user_id"})
			return
		}

		balance, err := svc.Credit(ctx, req.UserID, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				logger.Log.Warnw("invalid credit amount", "userID", req.UserID, "amount", req.Amount)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreditErrorResponse{Error: "Invalid amount"})
				return
			}
			logger.Log.Errorw("failed to credit balance", "userID", req.UserID, "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreditErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CreditResponse{
			Message:    "Balance credited successfully",
			NewBalance: balance,
		})
	}
}
