package repositories

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
)

// AdmitFunc decides whether a new transaction may be appended given the investor's
// authoritative balance at that instant. A non-nil error aborts the append.
type AdmitFunc func(current domain.Balance) error

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// ListTransactionsByInvestor returns the full ledger of an investor in insertion order.
	ListTransactionsByInvestor(ctx context.Context, investorID string) ([]domain.Transaction, error)

	// ListRecentTransactions returns the latest transactions of txType across non-deleted
	// investors, newest first.
	ListRecentTransactions(ctx context.Context, txType domain.TransactionType, limit int) ([]domain.Transaction, error)
}

// TransactionAppender is the only write path into the ledger. There is no update or delete.
type TransactionAppender interface {
	// AppendTransaction reads the investor's balance, calls admit, and on success stores the
	// transaction and the new cached balance, all as one atomic step with respect to other
	// appends for the same investor. It assigns TransactionID, Date and Sequence.
	AppendTransaction(ctx context.Context, txn domain.NewTransaction, admit AdmitFunc) (*domain.AppendResult, error)
}

// TransactionRepositoryFacade combines all ledger transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionAppender
}
