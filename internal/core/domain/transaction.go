package domain

import "time"

// TransactionType marks the direction of a ledger entry.
type TransactionType string

const (
	TransactionIn  TransactionType = "in"
	TransactionOut TransactionType = "out"
)

// Transaction is a bank/cash ledger entry with no derived effects.
type Transaction struct {
	ID        string
	Type      TransactionType
	Method    PaymentMode
	Amount    float64
	Reference string
	Tag       string
	Date      *time.Time
}
