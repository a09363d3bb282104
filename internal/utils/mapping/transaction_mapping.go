package mapping

import (
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Sequence:        d.Sequence,
		InvestorID:      d.InvestorID,
		TransactionType: models.TransactionType(d.TransactionType),
		Amount:          d.Amount,
		Notes:           d.Notes,
		TransactionDate: d.Date,
		CreatedAt:       d.CreatedAt,
		CreatedBy:       d.CreatedBy,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Ledger rows are immutable, so the last-updated audit fields mirror creation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		InvestorID:      m.InvestorID,
		TransactionType: domain.TransactionType(m.TransactionType),
		Amount:          m.Amount,
		Notes:           m.Notes,
		Date:            m.TransactionDate,
		Sequence:        m.Sequence,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.CreatedAt,
			LastUpdatedBy: m.CreatedBy,
		},
	}
}

// ToDomainTransactions converts a slice of model Transactions to domain Transactions
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
