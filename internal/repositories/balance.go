package repositories

import (
	"context"
	"errors"

	"github.com/dmarquezl/gw-storefront-ledger/internal/storage"
)

const balancesCollection = "balances"

// Documents is the subset of the document store the ledger repositories use.
type Documents interface {
	Get(ctx context.Context, collection, key string, dest any) error
	Put(ctx context.Context, collection, key string, value any) error
	Keys(ctx context.Context, collection string) ([]string, error)
}

// BalanceRepository persists gift balances, one document per account.
type BalanceRepository struct {
	store Documents
}

func NewBalanceRepository(store Documents) *BalanceRepository {
	return &BalanceRepository{store: store}
}

// Get returns the stored balance for an account, 0 when the account is unknown.
func (r *BalanceRepository) Get(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := r.store.Get(ctx, balancesCollection, userID, &balance)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balance, nil
}

// Save stores the balance for an account.
func (r *BalanceRepository) Save(ctx context.Context, userID string, balance int64) error {
	return r.store.Put(ctx, balancesCollection, userID, balance)
}
