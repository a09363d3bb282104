package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventTransactionAppended is emitted once a transaction is durably appended.
const EventTransactionAppended = "ledger.transaction.appended"

// AppendResult is the authoritative outcome of an append: the stored transaction and the
// investor balance right after it.
type AppendResult struct {
	Transaction Transaction `json:"transaction"`
	Balance     Balance     `json:"balance"`
}

// TransactionAppendedEvent notifies downstream consumers (dashboards, notifications) of a ledger change.
type TransactionAppendedEvent struct {
	EventType       string          `json:"eventType"`
	TransactionID   string          `json:"transactionID"`
	InvestorID      string          `json:"investorID"`
	TransactionType TransactionType `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	NetBalance      decimal.Decimal `json:"netBalance"`
	CreatedBy       string          `json:"createdBy"`
	OccurredAt      time.Time       `json:"occurredAt"`
}

// NewTransactionAppendedEvent builds the event for an append result.
func NewTransactionAppendedEvent(res AppendResult) TransactionAppendedEvent {
	return TransactionAppendedEvent{
		EventType:       EventTransactionAppended,
		TransactionID:   res.Transaction.TransactionID,
		InvestorID:      res.Transaction.InvestorID,
		TransactionType: res.Transaction.TransactionType,
		Amount:          res.Transaction.Amount,
		NetBalance:      res.Balance.NetBalance,
		CreatedBy:       res.Transaction.CreatedBy,
		OccurredAt:      res.Transaction.Date,
	}
}
