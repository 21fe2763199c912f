package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

// PointsReader defines the interface that the service must implement.
type PointsReader interface {
	Get(ctx context.Context, userID string) (total int64, tier string, err error)
}

// PointsResponse represents a successful response with an account's live points
// swagger:model PointsResponse
type PointsResponse struct {
	// Account identifier
	// example: 331077825641
	UserID string `json:"user_id"`

	// Live point total over the rolling window
	// example: 120
	Total int64 `json:"total"`

	// Loyalty tier derived from the live total
	// example: Silver
	Tier string `json:"tier"`
}

// PointsErrorResponse represents an error response when fetching points
// swagger:model PointsErrorResponse
type PointsErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewGetPointsHandler returns an HTTP handler for fetching live loyalty points.
// @Summary Get loyalty points
// @Description Returns the live point total and tier for an account; expired entries are pruned on read
// @Tags points
// @Produce json
// @Param userID path string true "Account identifier"
// @Success 200 {object} handlers.PointsResponse "Live points and tier"
// @Failure 500 {object} handlers.PointsErrorResponse "Internal server error"
// @Router /points/{userID} [get]
func NewGetPointsHandler(svc PointsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := chi.URLParam(r, "userID")

		total, tier, err := svc.Get(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get points", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PointsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PointsResponse{UserID: userID, Total: total, Tier: tier})
	}
}
