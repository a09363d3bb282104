package services

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations on an investor's ledger
type LedgerReaderSvc interface {
	// ListTransactions returns the investor's transactions in statement order.
	ListTransactions(ctx context.Context, investorID string) ([]domain.Transaction, error)

	// GetBalance returns the investor's ledger aggregates, served from cache when possible.
	GetBalance(ctx context.Context, investorID string) (*domain.Balance, error)

	// GetStatement returns the display-ready statement of an investor.
	GetStatement(ctx context.Context, investorID string) (*domain.Statement, error)
}

// LedgerWriterSvc defines the transaction authoring operations. Transactions are never edited
// or removed; a correction is a new offsetting transaction.
type LedgerWriterSvc interface {
	// Credit appends a credit (deposit) to the investor's ledger.
	Credit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error)

	// CreditInitialInvestment appends the first credit booked when an investor is registered.
	CreditInitialInvestment(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error)

	// Debit appends a debit (withdrawal), rejecting it with apperrors.ErrInsufficientBalance
	// when it exceeds the investor's authoritative net balance.
	Debit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error)

	// Reconcile re-derives the investor's cached invested total from the ledger.
	Reconcile(ctx context.Context, investorID string, userID string) (*domain.Balance, error)
}

// LedgerSvcFacade combines all ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
