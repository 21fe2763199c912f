package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
)

// RateCacheRepository provides cached USD-relative FX rates using Redis.
// Each currency has its own key; Redis expiration implements the TTL.
type RateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // validity window of a cached rate
}

// NewRateCacheRepository creates a new cache with the given TTL.
func NewRateCacheRepository(client *redis.Client, expiration time.Duration) *RateCacheRepository {
	return &RateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached rate for a currency. Returns an error on a miss or
// when the entry has expired.
func (r *RateCacheRepository) Get(ctx context.Context, currency string) (float64, error) {
	key := fmt.Sprintf("fx_rate:%s", currency)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("rate cache miss",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return 0, fmt.Errorf("rate not found in cache for %s", currency)
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	if err != nil {
		logger.Log.Errorw("unparseable cached rate",
			"key", key,
			"value", val,
			"error", err,
		)
		return 0, err
	}

	logger.Log.Infow("rate cache hit",
		"key", key,
		"rate", rate,
	)

	return rate, nil
}

// Set caches a rate for a currency with the repository's expiration.
func (r *RateCacheRepository) Set(ctx context.Context, currency string, rate float64) error {
	key := fmt.Sprintf("fx_rate:%s", currency)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow("rate cached",
		"key", key,
		"rate", rate,
		"ttl", r.exp,
		"error", err,
	)

	return err
}
