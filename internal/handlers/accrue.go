package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/services"
)

// PointsAccruer defines the interface that the service must implement.
type PointsAccruer interface {
	Accrue(ctx context.Context, userID string, basePoints int64, productID string) (earned, total int64, err error)
}

// AccrueRequest represents the JSON body for accruing loyalty points
// swagger:model AccrueRequest
type AccrueRequest struct {
	// Account identifier
	// required: true
	// example: 331077825641
	UserID string `json:"user_id"`

	// Base points before multipliers and bonuses, must be positive
	// required: true
	// example: 10
	BasePoints int64 `json:"base_points"`

	// Product identifier the purchase maps to; unknown ids earn at 1x
	// example: vbucks-5000
	ProductID string `json:"product_id"`
}

// AccrueResponse represents a successful accrual response
// swagger:model AccrueResponse
type AccrueResponse struct {
	// Success message
	// example: Points accrued successfully
	Message string `json:"message"`

	// Points earned by this accrual, after multiplier and bonus
	Earned int64 `json:"earned"`

	// Live point total after the accrual
	Total int64 `json:"total"`
}

// AccrueErrorResponse represents an error response for accrual
// swagger:model AccrueErrorResponse
type AccrueErrorResponse struct {
	// Error message
	// example: Invalid amount
	Error string `json:"error"`
}

// NewAccrueHandler returns an HTTP handler for accruing loyalty points.
// @Summary Accrue loyalty points
// @Description Awards points with the product's catalog multiplier and the repeat-purchase bonus
// @Tags points
// @Accept json
// @Produce json
// @Param request body handlers.AccrueRequest true "Accrue Request"
// @Success 200 {object} handlers.AccrueResponse "Points accrued successfully"
// @Failure 400 {object} handlers.AccrueErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.AccrueErrorResponse "Unauthorized"
// @Router /points/accrue [post]
// @Security BearerAuth
func NewAccrueHandler(svc PointsAccruer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req AccrueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode accrue request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccrueErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == "" {
			logger.Log.Warnw("accrue request without user id")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccrueErrorResponse{Error: "Missing user_id"})
			return
		}

		earned, total, err := svc.Accrue(ctx, req.UserID, req.BasePoints, req.ProductID)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				logger.Log.Warnw("invalid accrue base points", "userID", req.UserID, "basePoints", req.BasePoints)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AccrueErrorResponse{Error: "Invalid amount"})
				return
			}
			logger.Log.Errorw("failed to accrue points", "userID", req.UserID, "basePoints", req.BasePoints, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccrueErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AccrueResponse{
			Message: "Points accrued successfully",
			Earned:  earned,
			Total:   total,
		})
	}
}
