package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundRequest is one row of the fund_requests table.
type FundRequest struct {
	RequestID       string          `db:"request_id"`
	InvestorID      string          `db:"investor_id"`
	RequestType     string          `db:"request_type"`
	Amount          decimal.Decimal `db:"amount"`
	Notes           string          `db:"notes"`
	Status          string          `db:"status"`
	TransactionID   *string         `db:"transaction_id"`
	RejectionReason *string         `db:"rejection_reason"`
	ReviewedBy      *string         `db:"reviewed_by"`
	ReviewedAt      *time.Time      `db:"reviewed_at"`
	AuditFields
}
