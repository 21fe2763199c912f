package models

// RankingEntry is one row of the monthly leaderboard.
type RankingEntry struct {
	UserID string `json:"user_id"` // Account identifier
	Points int64  `json:"points"`  // Points accrued within the ranking window
}
