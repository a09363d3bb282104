package dto

import (
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFundRequestRequest is the body of a new deposit or withdrawal request.
type CreateFundRequestRequest struct {
	InvestorID string          `json:"investorID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"txamount"` // Whole currency units, > 0
	Notes      *string         `json:"notes"`                     // Copied to the ledger entry on approval
}

// RejectFundRequestRequest optionally explains a rejection.
type RejectFundRequestRequest struct {
	Reason string `json:"reason"`
}

// ListFundRequestsParams defines query parameters for listing a request queue.
type ListFundRequestsParams struct {
	Status     domain.FundRequestStatus `form:"status" binding:"omitempty,oneof=pending processing approved rejected"`
	InvestorID string                   `form:"investorID"`
	Limit      int                      `form:"limit,default=50" binding:"min=1,max=500"`
	Offset     int                      `form:"offset,default=0" binding:"min=0"`
}

// FundRequestResponse defines the data returned for a deposit or withdrawal request.
type FundRequestResponse struct {
	RequestID       string                   `json:"requestID"`
	InvestorID      string                   `json:"investorID"`
	Type            domain.FundRequestType   `json:"type"`
	Amount          decimal.Decimal          `json:"amount"`
	Notes           string                   `json:"notes"`
	Status          domain.FundRequestStatus `json:"status"`
	TransactionID   *string                  `json:"transactionID,omitempty"`
	RejectionReason *string                  `json:"rejectionReason,omitempty"`
	ReviewedBy      *string                  `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time               `json:"reviewedAt,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	CreatedBy       string                   `json:"createdBy"`
}

// ListFundRequestsResponse wraps a page of requests.
type ListFundRequestsResponse struct {
	Requests []FundRequestResponse `json:"requests"`
	Limit    int                   `json:"limit"`
	Offset   int                   `json:"offset"`
}

// ToFundRequestResponse converts a domain.FundRequest to FundRequestResponse DTO.
func ToFundRequestResponse(req *domain.FundRequest) FundRequestResponse {
	return FundRequestResponse{
		RequestID:       req.RequestID,
		InvestorID:      req.InvestorID,
		Type:            req.Type,
		Amount:          req.Amount,
		Notes:           req.Notes,
		Status:          req.Status,
		TransactionID:   req.TransactionID,
		RejectionReason: req.RejectionReason,
		ReviewedBy:      req.ReviewedBy,
		ReviewedAt:      req.ReviewedAt,
		CreatedAt:       req.CreatedAt,
		CreatedBy:       req.CreatedBy,
	}
}

// ToFundRequestResponses converts a slice of domain.FundRequest.
func ToFundRequestResponses(reqs []domain.FundRequest) []FundRequestResponse {
	responses := make([]FundRequestResponse, len(reqs))
	for i := range reqs {
		responses[i] = ToFundRequestResponse(&reqs[i])
	}
	return responses
}
