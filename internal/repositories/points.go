package repositories

import (
	"context"
	"errors"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
	"github.com/dmarquezl/gw-storefront-ledger/internal/storage"
)

const pointsCollection = "points"

// PointsRepository persists loyalty accounts, one document per account.
type PointsRepository struct {
	store Documents
}

func NewPointsRepository(store Documents) *PointsRepository {
	return &PointsRepository{store: store}
}

// Get returns the stored loyalty account, a zero-valued account when unknown.
func (r *PointsRepository) Get(ctx context.Context, userID string) (models.PointsAccount, error) {
	var acct models.PointsAccount
	err := r.store.Get(ctx, pointsCollection, userID, &acct)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.PointsAccount{}, nil
		}
		return models.PointsAccount{}, err
	}
	return acct, nil
}

// Save stores the loyalty account.
func (r *PointsRepository) Save(ctx context.Context, userID string, acct models.PointsAccount) error {
	return r.store.Put(ctx, pointsCollection, userID, acct)
}

// All returns every loyalty account in insertion order. Accounts whose
// documents fail to load abort the listing; a partial leaderboard would be
// worse than an error.
func (r *PointsRepository) All(ctx context.Context) ([]models.UserPoints, error) {
	keys, err := r.store.Keys(ctx, pointsCollection)
	if err != nil {
		return nil, err
	}

	accounts := make([]models.UserPoints, 0, len(keys))
	for _, userID := range keys {
		var acct models.PointsAccount
		if err := r.store.Get(ctx, pointsCollection, userID, &acct); err != nil {
			logger.Log.Errorw("failed to load points account", "userID", userID, "error", err)
			return nil, err
		}
		accounts = append(accounts, models.UserPoints{UserID: userID, Account: acct})
	}
	return accounts, nil
}
