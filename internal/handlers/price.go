package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
	"github.com/dmarquezl/gw-storefront-ledger/internal/services"
)

// PriceConverter defines the interface that the service must implement.
type PriceConverter interface {
	Convert(ctx context.Context, basePriceUSD float64, currency string) (models.Price, error)
}

// PriceResponse represents a successful price conversion
// swagger:model PriceResponse
type PriceResponse struct {
	// Product identifier
	// example: vbucks-1000
	Product string `json:"product"`

	// Base price in USD
	// example: 8.99
	BasePriceUSD float64 `json:"base_price_usd"`

	// Converted display price
	Price models.Price `json:"price"`
}

// PriceErrorResponse represents an error response for price conversion
// swagger:model PriceErrorResponse
type PriceErrorResponse struct {
	// Error message
	// example: Unknown currency
	Error string `json:"error"`
}

// NewPriceHandler returns an HTTP handler for storefront price conversion.
// @Summary Convert product price
// @Description Converts a catalog product's USD price into the requested currency with smart rounding
// @Tags pricing
// @Produce json
// @Param product query string true "Product identifier"
// @Param currency query string true "Target currency code"
// @Success 200 {object} handlers.PriceResponse "Converted price"
// @Failure 400 {object} handlers.PriceErrorResponse "Unknown product or missing parameters"
// @Failure 404 {object} handlers.PriceErrorResponse "Unknown currency"
// @Failure 502 {object} handlers.PriceErrorResponse "Rate source unavailable"
// @Router /price [get]
func NewPriceHandler(svc PriceConverter, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID := r.URL.Query().Get("product")
		currency := r.URL.Query().Get("currency")
		if productID == "" || currency == "" {
			logger.Log.Warnw("price request missing parameters", "product", productID, "currency", currency)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PriceErrorResponse{Error: "Missing product or currency"})
			return
		}

		product, ok := cat.Product(productID)
		if !ok {
			logger.Log.Warnw("price request for unknown product", "product", productID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PriceErrorResponse{Error: "Unknown product"})
			return
		}

		price, err := svc.Convert(ctx, product.PriceUSD, currency)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownCurrency):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PriceErrorResponse{Error: "Unknown currency"})
			case errors.Is(err, services.ErrUpstreamUnavailable):
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(PriceErrorResponse{Error: "Rate source unavailable"})
			default:
				logger.Log.Errorw("failed to convert price", "product", productID, "currency", currency, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PriceErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(PriceResponse{
			Product:      productID,
			BasePriceUSD: product.PriceUSD,
			Price:        price,
		})
	}
}
