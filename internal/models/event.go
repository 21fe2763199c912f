package models

// Ledger operation names published with each event.
const (
	OpCredit = "credit"
	OpDebit  = "debit"
	OpAccrue = "accrue"
)

// LedgerEvent represents a single ledger mutation, published to Kafka
// for downstream consumers (analytics, audit).
type LedgerEvent struct {
	EventID   string `json:"event_id"`          // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`         // Timestamp is the Unix timestamp (in seconds) when the mutation occurred.
	UserID    string `json:"user_id"`           // UserID is the account the mutation applies to.
	Operation string `json:"operation"`         // Operation is one of "credit", "debit" or "accrue".
	Amount    int64  `json:"amount"`            // Amount is the balance delta or base points of the operation.
	Points    int64  `json:"points,omitempty"`  // Points is the number of points actually earned (accrue only).
	Product   string `json:"product,omitempty"` // Product is the product identifier involved, if any.
}
