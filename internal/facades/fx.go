package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

// FXHTTPFacade fetches USD-relative exchange rates from an external HTTP
// endpoint returning {"rates": {"EUR": 0.92, ...}}. Requests carry an
// explicit timeout and are retried a bounded number of times with backoff.
type FXHTTPFacade struct {
	client  *http.Client
	url     string
	retries int
}

// NewFXHTTPFacade creates a facade for the given rates endpoint.
// retries is the number of additional attempts after the first failure.
func NewFXHTTPFacade(url string, timeout time.Duration, retries int) *FXHTTPFacade {
	if retries < 0 {
		retries = 0
	}
	return &FXHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		url:     url,
		retries: retries,
	}
}

type ratesPayload struct {
	Rates map[string]float64 `json:"rates"`
}

// GetRates fetches the full rates table.
func (f *FXHTTPFacade) GetRates(ctx context.Context) (map[string]float64, error) {
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			backoff *= 2
		}

		rates, err := f.fetch(ctx)
		if err == nil {
			return rates, nil
		}
		lastErr = err
		logger.Log.Errorw("failed to fetch exchange rates",
			"url", f.url, "attempt", attempt+1, "error", err)
	}

	return nil, lastErr
}

func (f *FXHTTPFacade) fetch(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates endpoint returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed rates payload: %w", err)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rates payload contains no rates")
	}

	return payload.Rates, nil
}
