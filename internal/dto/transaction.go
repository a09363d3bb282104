package dto

import (
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the body of a credit or debit request.
type CreateTransactionRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"txamount"` // Whole currency units, > 0
	Notes  *string         `json:"notes"`                     // Optional, defaults per transaction type
}

// TransactionResponse defines the data returned for a ledger transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	InvestorID    string          `json:"investorID"`
	Type          string          `json:"type"` // credit or debit
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"createdBy"`
}

// BalanceResponse carries the ledger aggregates of an investor.
type BalanceResponse struct {
	InvestorID  string          `json:"investorID"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}

// AppendTransactionResponse is returned after a credit or debit is committed.
type AppendTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Balance     BalanceResponse     `json:"balance"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		InvestorID:    txn.InvestorID,
		Type:          string(txn.TransactionType),
		Amount:        txn.Amount,
		Notes:         txn.Notes,
		Date:          txn.Date,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToBalanceResponse converts ledger aggregates to BalanceResponse DTO.
func ToBalanceResponse(investorID string, b domain.Balance) BalanceResponse {
	return BalanceResponse{
		InvestorID:  investorID,
		CreditTotal: b.CreditTotal,
		DebitTotal:  b.DebitTotal,
		NetBalance:  b.NetBalance,
	}
}

// ToAppendTransactionResponse converts an append result to its response DTO.
func ToAppendTransactionResponse(res *domain.AppendResult) AppendTransactionResponse {
	return AppendTransactionResponse{
		Transaction: ToTransactionResponse(&res.Transaction),
		Balance:     ToBalanceResponse(res.Transaction.InvestorID, res.Balance),
	}
}
