package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

// Ranker defines the interface that the service must implement.
type Ranker interface {
	MonthlyRanking(ctx context.Context, limit int) ([]models.RankingEntry, error)
}

// RankingResponse represents a successful leaderboard response
// swagger:model RankingResponse
type RankingResponse struct {
	// Leaderboard rows, sorted by monthly points descending
	Ranking []models.RankingEntry `json:"ranking"`
}

// RankingErrorResponse represents an error response for the leaderboard
// swagger:model RankingErrorResponse
type RankingErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewRankingHandler returns an HTTP handler for the monthly leaderboard.
// @Summary Monthly ranking
// @Description Returns the top accounts by points accrued in the last 30 days
// @Tags points
// @Produce json
// @Param limit query int false "Maximum rows to return" default(10)
// @Success 200 {object} handlers.RankingResponse "Leaderboard, possibly empty"
// @Failure 500 {object} handlers.RankingErrorResponse "Internal server error"
// @Router /ranking [get]
func NewRankingHandler(svc Ranker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				logger.Log.Warnw("invalid ranking limit", "limit", raw)
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RankingErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = parsed
		}

		ranking, err := svc.MonthlyRanking(ctx, limit)
		if err != nil {
			logger.Log.Errorw("failed to compute ranking", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RankingErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RankingResponse{Ranking: ranking})
	}
}
