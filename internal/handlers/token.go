package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

// TokenIssuer defines the interface that the JWT service must implement.
type TokenIssuer interface {
	Generate(ctx context.Context, userID string, staff bool) (string, error)
}

// TokenRequest represents the JSON body for issuing a staff token
// swagger:model TokenRequest
type TokenRequest struct {
	// Shared admin secret of the deployment
	// required: true
	Secret string `json:"secret"`

	// Account identifier the token is issued for
	// required: true
	// example: 331077825641
	UserID string `json:"user_id"`
}

// TokenResponse represents a successful token issuance
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed staff JWT
	Token string `json:"token"`
}

// TokenErrorResponse represents an error response for token issuance
// swagger:model TokenErrorResponse
type TokenErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewTokenHandler returns an HTTP handler issuing staff-capability tokens.
// The shared secret stands in for the chat platform's role check; holders of
// a staff token may call the privileged ledger operations.
// @Summary Issue staff token
// @Description Issues a staff JWT given the deployment's admin secret
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.TokenRequest true "Token Request"
// @Success 200 {object} handlers.TokenResponse "Signed token"
// @Failure 401 {object} handlers.TokenErrorResponse "Unauthorized"
// @Router /token [post]
func NewTokenHandler(issuer TokenIssuer, adminSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode token request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TokenErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == "" || adminSecret == "" ||
			subtle.ConstantTimeCompare([]byte(req.Secret), []byte(adminSecret)) != 1 {
			logger.Log.Warnw("rejected token request", "userID", req.UserID)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TokenErrorResponse{Error: "Unauthorized"})
			return
		}

		token, err := issuer.Generate(ctx, req.UserID, true)
		if err != nil {
			logger.Log.Errorw("failed to generate token", "userID", req.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TokenErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{Token: token})
	}
}
