package entity

import "time"

// Transaction is a backend-owned ledger record. The client displays and
// creates transactions, it never edits or deletes them.
type Transaction struct {
	Coin   string  `json:"coin"`
	Amount float64 `json:"amount"`
	Value  float64 `json:"value"`
	Type   string  `json:"type"`
	Date   string  `json:"date"`
}

// NewTransaction is what the add-transaction form collects before the
// backend client normalizes it onto the wire.
type NewTransaction struct {
	Coin   string
	Amount float64
	Type   string
	Value  float64
	Date   time.Time
}
