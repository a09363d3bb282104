package repositories

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
)

// BalanceCache keeps derived ledger aggregates per investor.
// Implementations may lose entries at any time; the ledger is always the source of truth.
type BalanceCache interface {
	Get(ctx context.Context, investorID string) (*domain.Balance, bool)

	// Set stores balance as derived from the ledger up to and including sequence, the last
	// transaction sequence it covers. An entry covering a later sequence is never replaced.
	Set(ctx context.Context, investorID string, balance domain.Balance, sequence int64) error

	Invalidate(ctx context.Context, investorID string) error
}

// EventPublisher ships ledger events to downstream consumers.
type EventPublisher interface {
	PublishTransactionAppended(ctx context.Context, event domain.TransactionAppendedEvent) error
}
