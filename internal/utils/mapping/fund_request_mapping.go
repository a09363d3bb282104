package mapping

import (
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/models"
)

// ToModelFundRequest converts a domain FundRequest to a model FundRequest
func ToModelFundRequest(d domain.FundRequest) models.FundRequest {
	return models.FundRequest{
		RequestID:       d.RequestID,
		InvestorID:      d.InvestorID,
		RequestType:     string(d.Type),
		Amount:          d.Amount,
		Notes:           d.Notes,
		Status:          string(d.Status),
		TransactionID:   d.TransactionID,
		RejectionReason: d.RejectionReason,
		ReviewedBy:      d.ReviewedBy,
		ReviewedAt:      d.ReviewedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFundRequest converts a model FundRequest to a domain FundRequest
func ToDomainFundRequest(m models.FundRequest) domain.FundRequest {
	return domain.FundRequest{
		RequestID:       m.RequestID,
		InvestorID:      m.InvestorID,
		Type:            domain.FundRequestType(m.RequestType),
		Amount:          m.Amount,
		Notes:           m.Notes,
		Status:          domain.FundRequestStatus(m.Status),
		TransactionID:   m.TransactionID,
		RejectionReason: m.RejectionReason,
		ReviewedBy:      m.ReviewedBy,
		ReviewedAt:      m.ReviewedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
