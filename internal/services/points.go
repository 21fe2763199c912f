package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

// PointsStore defines the persistence methods the points ledger needs.
type PointsStore interface {
	Get(ctx context.Context, userID string) (models.PointsAccount, error)     // Returns the stored account, zero-valued for unknown accounts
	Save(ctx context.Context, userID string, acct models.PointsAccount) error // Stores the account
}

// PointsService is the loyalty-points ledger: accrual with product
// multipliers and a repeat-purchase bonus, plus lazy rolling-window expiry.
type PointsService struct {
	repo    PointsStore
	catalog *catalog.Catalog
	events  EventWriter
	locks   keyedMutex
	now     func() time.Time
}

// NewPointsService creates a new PointsService.
func NewPointsService(repo PointsStore, cat *catalog.Catalog, events EventWriter) *PointsService {
	return &PointsService{
		repo:    repo,
		catalog: cat,
		events:  events,
		now:     time.Now,
	}
}

// Accrue awards loyalty points to an account. The base is scaled by the
// product's catalog multiplier (floored), a flat bonus applies when the
// previous purchase is within the bonus window, and expired history is
// pruned before the new total is computed. Returns the points earned by
// this accrual and the account's live total.
func (s *PointsService) Accrue(ctx context.Context, userID string, basePoints int64, productID string) (earned, total int64, err error) {
	if basePoints <= 0 {
		return 0, 0, ErrInvalidAmount
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	acct, err := s.repo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load points account", "userID", userID, "error", err)
		return 0, 0, err
	}

	now := s.now()
	earned = int64(math.Floor(float64(basePoints) * s.catalog.Multiplier(productID)))

	if acct.LastPurchaseAt != 0 {
		sinceLast := now.Sub(time.Unix(acct.LastPurchaseAt, 0))
		if sinceLast <= s.catalog.BonusWindow() {
			earned += s.catalog.Loyalty.BonusPoints
		}
	}

	acct.History = append(acct.History, models.PointEntry{
		Points:    earned,
		Timestamp: now.Unix(),
		Product:   productID,
	})
	acct.LastPurchaseAt = now.Unix()

	acct = pruneAccount(acct, now, s.catalog.ExpiryWindow())

	if err := s.repo.Save(ctx, userID, acct); err != nil {
		logger.Log.Errorw("failed to save points account", "userID", userID, "error", err)
		return 0, 0, err
	}

	publishEvent(ctx, s.events, models.LedgerEvent{
		EventID:   uuid.NewString(),
		Timestamp: now.Unix(),
		UserID:    userID,
		Operation: models.OpAccrue,
		Amount:    basePoints,
		Points:    earned,
		Product:   productID,
	})

	return earned, acct.Total, nil
}

// Get returns an account's live point total and tier. Expiry is lazy:
// stale entries are pruned on every read and the pruned state is written
// back, so a displayed total never includes expired points.
func (s *PointsService) Get(ctx context.Context, userID string) (total int64, tier string, err error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	acct, err := s.repo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load points account", "userID", userID, "error", err)
		return 0, "", err
	}

	pruned := pruneAccount(acct, s.now(), s.catalog.ExpiryWindow())
	if len(pruned.History) != len(acct.History) || pruned.Total != acct.Total {
		if err := s.repo.Save(ctx, userID, pruned); err != nil {
			logger.Log.Errorw("failed to write back pruned points account", "userID", userID, "error", err)
			return 0, "", err
		}
	}

	return pruned.Total, s.catalog.Tier(pruned.Total), nil
}

// pruneAccount drops history entries older than the window and recomputes
// the total from what remains. Pure function of (account, now).
func pruneAccount(acct models.PointsAccount, now time.Time, window time.Duration) models.PointsAccount {
	cutoff := now.Add(-window).Unix()

	live := make([]models.PointEntry, 0, len(acct.History))
	var total int64
	for _, e := range acct.History {
		if e.Timestamp >= cutoff {
			live = append(live, e)
			total += e.Points
		}
	}

	acct.History = live
	acct.Total = total
	return acct
}
