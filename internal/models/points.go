package models

// Supported currency codes used across the pricing engine
const (
	USD = "USD"
	EUR = "EUR"
)

// PointEntry is a single loyalty accrual in an account's history.
// Entries are immutable once created and are dropped when they fall
// outside the rolling expiry window.
type PointEntry struct {
	Points    int64  `json:"points"`            // Points earned by this accrual
	Timestamp int64  `json:"timestamp"`         // Unix timestamp (seconds) of the accrual
	Product   string `json:"product,omitempty"` // Optional product identifier the accrual came from
}

// PointsAccount is the persisted loyalty state for one account.
type PointsAccount struct {
	Total          int64        `json:"total"`            // Sum of points over non-expired history entries
	History        []PointEntry `json:"history"`          // Ordered accrual history, oldest first
	LastPurchaseAt int64        `json:"last_purchase_at"` // Unix timestamp of the most recent accrual, 0 if never
}

// UserPoints pairs an account identifier with its loyalty state.
// Used by the ranking view, which iterates all accounts in insertion order.
type UserPoints struct {
	UserID  string
	Account PointsAccount
}

// Loyalty tier names derived from live point totals.
const (
	TierBronze = "Bronze"
	TierSilver = "Silver"
	TierGold   = "Gold"
)
