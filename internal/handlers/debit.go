package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/services"
)

// BalanceDebtor defines the interface that the service must implement.
type BalanceDebtor interface {
	Debit(ctx context.Context, userID string, amount int64) (int64, error)
}

// DebitRequest represents the JSON body for debiting a gift balance
// swagger:model DebitRequest
type DebitRequest struct {
	// Account identifier
	// required: true
	// example: 331077825641
	UserID string `json:"user_id"`

	// Amount to debit, must be a positive integer
	// required: true
	// example: 200
	Amount int64 `json:"amount"`
}

// DebitResponse represents a successful debit response
// swagger:model DebitResponse
type DebitResponse struct {
	// Success message
	// example: Balance debited successfully
	Message string `json:"message"`

	// New balance of the account, clamped at zero
	NewBalance int64 `json:"new_balance"`
}

// DebitErrorResponse represents an error response for debit
// swagger:model DebitErrorResponse
type DebitErrorResponse struct {
	// Error message
	// example: Invalid amount
	Error string `json:"error"`
}

// NewDebitHandler returns an HTTP handler for debiting a gift balance.
// @Summary Debit gift balance
// @Description Subtracts a positive integer amount from an account's gift balance, clamping at zero
// @Tags balance
// @Accept json
// @Produce json
// @Param request body handlers.DebitRequest true "Debit Request"
// @Success 200 {object} handlers.DebitResponse "Balance debited successfully"
// @Failure 400 {object} handlers.DebitErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.DebitErrorResponse "Unauthorized"
// @Router /balance/debit [post]
// @Security BearerAuth
func NewDebitHandler(svc BalanceDebtor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req DebitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode debit request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DebitErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == "" {
			logger.Log.Warnw("debit request without user id")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DebitErrorResponse{Error: "Missing user_id"})
			return
		}

		balance, err := svc.Debit(ctx, req.UserID, req.Amount)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				logger.Log.Warnw("invalid debit amount", "userID", req.UserID, "amount", req.Amount)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DebitErrorResponse{Error: "Invalid amount"})
				return
			}
			logger.Log.Errorw("failed to debit balance", "userID", req.UserID, "amount", req.Amount, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DebitErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DebitResponse{
			Message:    "Balance debited successfully",
			NewBalance: balance,
		})
	}
}
