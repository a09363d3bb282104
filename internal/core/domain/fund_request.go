package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundRequestType distinguishes deposit requests from withdrawal requests.
type FundRequestType string

const (
	DepositRequest    FundRequestType = "deposit"
	WithdrawalRequest FundRequestType = "withdrawal"
)

// IsValid reports whether t is a known request type.
func (t FundRequestType) IsValid() bool {
	return t == DepositRequest || t == WithdrawalRequest
}

// TransactionType is the ledger entry an approved request of this type books.
func (t FundRequestType) TransactionType() TransactionType {
	if t == WithdrawalRequest {
		return Debit
	}
	return Credit
}

// FundRequestStatus is the review state of a fund request.
// A request is processing only while one reviewer is acting on it.
type FundRequestStatus string

const (
	FundRequestPending    FundRequestStatus = "pending"
	FundRequestProcessing FundRequestStatus = "processing"
	FundRequestApproved   FundRequestStatus = "approved"
	FundRequestRejected   FundRequestStatus = "rejected"
)

// IsFinal reports whether no further review is possible.
func (s FundRequestStatus) IsFinal() bool {
	return s == FundRequestApproved || s == FundRequestRejected
}

// FundRequest is a deposit or withdrawal awaiting admin review. Approval books the matching
// ledger transaction; the request itself never moves money.
type FundRequest struct {
	RequestID       string            `json:"requestID"`
	InvestorID      string            `json:"investorID"`
	Type            FundRequestType   `json:"type"`
	Amount          decimal.Decimal   `json:"amount"`
	Notes           string            `json:"notes"`
	Status          FundRequestStatus `json:"status"`
	TransactionID   *string           `json:"transactionID,omitempty"`
	RejectionReason *string           `json:"rejectionReason,omitempty"`
	ReviewedBy      *string           `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewedAt,omitempty"`
	AuditFields
}

// FundRequestFilter narrows a fund request listing. Zero fields match everything.
type FundRequestFilter struct {
	Type       FundRequestType
	Status     FundRequestStatus
	InvestorID string
	Limit      int
	Offset     int
}

// FundRequestResolution closes a processing request.
type FundRequestResolution struct {
	Status          FundRequestStatus
	TransactionID   *string
	RejectionReason *string
	ReviewedBy      string
	ReviewedAt      time.Time
}

// PendingFundRequestTotal aggregates the open requests of one type.
type PendingFundRequestTotal struct {
	Type   FundRequestType `json:"type"`
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}
