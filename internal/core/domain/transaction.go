package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger transaction adds to or takes from an investor's balance.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction is a single immutable entry in an investor's ledger.
// Once persisted it is never updated or deleted; corrections are new offsetting transactions.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary Key (UUID)
	InvestorID      string          `json:"investorID"`    // FK -> investors.investor_id
	TransactionType TransactionType `json:"type"`          // credit or debit
	Amount          decimal.Decimal `json:"amount"`        // Positive whole currency units
	Notes           string          `json:"notes"`         // Nullable
	Date            time.Time       `json:"date"`          // Assigned by persistence
	Sequence        int64           `json:"sequence"`      // Insertion order, assigned by persistence
	AuditFields
}

// SignedAmount returns the amount as it affects the net balance: positive for credits, negative for debits.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// NewTransaction is an authored, not yet persisted, transaction.
type NewTransaction struct {
	InvestorID      string
	TransactionType TransactionType
	Amount          decimal.Decimal
	Notes           string
	CreatedBy       string
}
