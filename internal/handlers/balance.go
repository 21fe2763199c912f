package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	Get(ctx context.Context, userID string) (int64, error)
}

// BalanceResponse represents a successful response with an account balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Account identifier
	// example: 331077825641
	UserID string `json:"user_id"`

	// Gift balance, never negative
	// example: 1500
	Balance int64 `json:"balance"`
}

// BalanceErrorResponse represents an error response when fetching a balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching an account's gift balance.
// @Summary Get gift balance
// @Description Returns the gift balance for an account, 0 for unknown accounts
// @Tags balance
// @Produce json
// @Param userID path string true "Account identifier"
// @Success 200 {object} handlers.BalanceResponse "Current balance"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /balance/{userID} [get]
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := chi.URLParam(r, "userID")

		balance, err := svc.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(BalanceResponse{UserID: userID, Balance: balance})
	}
}
