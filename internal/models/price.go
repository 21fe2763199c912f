package models

// Price is the result of converting a USD base price into a target currency.
type Price struct {
	Currency string  `json:"currency"` // Target currency code
	Amount   float64 `json:"amount"`   // Converted amount, possibly rounded
	Rounded  bool    `json:"rounded"`  // Whether step rounding was applied
}
