package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
)

// ProductsResponse represents the storefront catalog listing
// swagger:model ProductsResponse
type ProductsResponse struct {
	// Catalog products with USD base prices
	Products []catalog.Product `json:"products"`
}

// NewProductsHandler returns an HTTP handler listing the product catalog.
// @Summary List products
// @Description Returns the static product catalog used by storefront panels
// @Tags pricing
// @Produce json
// @Success 200 {object} handlers.ProductsResponse "Catalog products"
// @Router /products [get]
func NewProductsHandler(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductsResponse{Products: cat.Products})
	}
}
