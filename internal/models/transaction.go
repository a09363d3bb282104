package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is stored lowercase: credit or debit.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is one row of the append-only transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Sequence        int64           `db:"sequence"`
	InvestorID      string          `db:"investor_id"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Notes           string          `db:"notes"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
	CreatedBy       string          `db:"created_by"`
}
