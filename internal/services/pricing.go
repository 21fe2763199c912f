package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

var (
	// ErrUnknownCurrency is returned when the fetched rate table lacks the
	// requested currency code.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrUpstreamUnavailable is returned when the FX source cannot be
	// reached or returns an unusable response. It is never papered over
	// with a stale or default rate.
	ErrUpstreamUnavailable = errors.New("exchange rate source unavailable")
)

// RateSource fetches the full USD-relative rates table.
type RateSource interface {
	GetRates(ctx context.Context) (map[string]float64, error)
}

// RateCache caches individual currency rates with a TTL.
type RateCache interface {
	Get(ctx context.Context, currency string) (float64, error)
	Set(ctx context.Context, currency string, rate float64) error
}

// PricingService converts USD base prices into display prices in a target
// currency, with TTL-cached rates and magnitude-stepped ceiling rounding.
type PricingService struct {
	source  RateSource
	cache   RateCache
	catalog *catalog.Catalog
}

// NewPricingService creates a new PricingService.
func NewPricingService(source RateSource, cache RateCache, cat *catalog.Catalog) *PricingService {
	return &PricingService{source: source, cache: cache, catalog: cat}
}

// Convert converts a USD base price into the target currency. USD prices
// pass through untouched. Other currencies are converted at the cached rate
// (fetching and caching on a miss) and rounded up to a magnitude step,
// unless the currency is configured for exact display. The displayed price
// is never below the true converted value.
func (s *PricingService) Convert(ctx context.Context, basePriceUSD float64, currency string) (models.Price, error) {
	currency = strings.ToUpper(currency)

	if currency == models.USD {
		return models.Price{Currency: currency, Amount: basePriceUSD}, nil
	}

	rate, err := s.cache.Get(ctx, currency)
	if err != nil {
		rates, err := s.source.GetRates(ctx)
		if err != nil {
			logger.Log.Errorw("failed to fetch exchange rates", "currency", currency, "error", err)
			return models.Price{}, ErrUpstreamUnavailable
		}

		var ok bool
		rate, ok = rates[currency]
		if !ok {
			return models.Price{}, ErrUnknownCurrency
		}

		if err := s.cache.Set(ctx, currency, rate); err != nil {
			logger.Log.Errorw("failed to cache exchange rate", "currency", currency, "rate", rate, "error", err)
		}
	}

	value := basePriceUSD * rate

	if s.catalog.ExactCurrency(currency) {
		return models.Price{Currency: currency, Amount: value}, nil
	}

	return models.Price{Currency: currency, Amount: ceilToStep(value), Rounded: true}, nil
}

// roundingStep picks the rounding step by the magnitude of the value.
func roundingStep(value float64) float64 {
	switch {
	case value < 1_000:
		return 10
	case value < 10_000:
		return 100
	case value < 100_000:
		return 1_000
	default:
		return 10_000
	}
}

// ceilToStep rounds value up to the nearest multiple of its magnitude step.
func ceilToStep(value float64) float64 {
	step := roundingStep(value)
	return math.Ceil(value/step) * step
}
