package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmarquezl/gw-storefront-ledger/internal/logger"
	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

var (
	// ErrInvalidAmount is returned when a credit, debit or accrual amount
	// is not a positive integer.
	ErrInvalidAmount = errors.New("invalid amount")
)

// BalanceStore defines the persistence methods the balance ledger needs.
type BalanceStore interface {
	Get(ctx context.Context, userID string) (int64, error)        // Returns the stored balance, 0 for unknown accounts
	Save(ctx context.Context, userID string, balance int64) error // Stores the balance for an account
}

// BalanceService is the gift-balance ledger. Balances model store credit
// and can never go negative.
type BalanceService struct {
	repo   BalanceStore
	events EventWriter
	locks  keyedMutex
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(repo BalanceStore, events EventWriter) *BalanceService {
	return &BalanceService{repo: repo, events: events}
}

// Credit adds amount to an account's balance and returns the new balance.
func (s *BalanceService) Credit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	current, err := s.repo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load balance", "userID", userID, "error", err)
		return 0, err
	}

	balance := current + amount
	if err := s.repo.Save(ctx, userID, balance); err != nil {
		logger.Log.Errorw("failed to save balance", "userID", userID, "balance", balance, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.events, models.LedgerEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Operation: models.OpCredit,
		Amount:    amount,
	})

	return balance, nil
}

// Debit subtracts amount from an account's balance, clamping at zero, and
// returns the new balance. Debiting more than the balance is not an error:
// store credit simply runs out.
func (s *BalanceService) Debit(ctx context.Context, userID string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	current, err := s.repo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load balance", "userID", userID, "error", err)
		return 0, err
	}

	balance := current - amount
	if balance < 0 {
		balance = 0
	}
	if err := s.repo.Save(ctx, userID, balance); err != nil {
		logger.Log.Errorw("failed to save balance", "userID", userID, "balance", balance, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.events, models.LedgerEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID,
		Operation: models.OpDebit,
		Amount:    amount,
	})

	return balance, nil
}

// Get returns an account's balance, 0 for unknown accounts.
func (s *BalanceService) Get(ctx context.Context, userID string) (int64, error) {
	balance, err := s.repo.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load balance", "userID", userID, "error", err)
		return 0, err
	}
	return balance, nil
}
