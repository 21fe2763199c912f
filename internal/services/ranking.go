package services

import (
	"context"
	"sort"
	"time"

	"github.com/dmarquezl/gw-storefront-ledger/internal/catalog"
	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

// DefaultRankingLimit caps the leaderboard when the caller does not.
const DefaultRankingLimit = 10

// PointsLister lists all loyalty accounts in insertion order.
type PointsLister interface {
	All(ctx context.Context) ([]models.UserPoints, error)
}

// RankingService derives the monthly leaderboard from the points ledger.
type RankingService struct {
	repo    PointsLister
	catalog *catalog.Catalog
	now     func() time.Time
}

// NewRankingService creates a new RankingService.
func NewRankingService(repo PointsLister, cat *catalog.Catalog) *RankingService {
	return &RankingService{
		repo:    repo,
		catalog: cat,
		now:     time.Now,
	}
}

// MonthlyRanking returns the top accounts by points accrued within the
// expiry window, sorted descending. Window sums are recomputed from raw
// history rather than stored totals, so the view never depends on the
// ledger having freshly pruned every account. Accounts with a non-positive
// window sum are excluded; ties keep insertion order. An empty leaderboard
// is a valid result, not an error.
func (s *RankingService) MonthlyRanking(ctx context.Context, limit int) ([]models.RankingEntry, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	accounts, err := s.repo.All(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list points accounts", "error", err)
		return nil, err
	}

	cutoff := s.now().Add(-s.catalog.ExpiryWindow()).Unix()

	ranking := make([]models.RankingEntry, 0, len(accounts))
	for _, a := range accounts {
		var monthly int64
		for _, e := range a.Account.History {
			if e.Timestamp >= cutoff {
				monthly += e.Points
			}
		}
		if monthly > 0 {
			ranking = append(ranking, models.RankingEntry{UserID: a.UserID, Points: monthly})
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Points > ranking[j].Points
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, nil
}
