package services

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
)

// noopBalanceCache is used when no cache is configured; every read misses.
type noopBalanceCache struct{}

func (noopBalanceCache) Get(context.Context, string) (*domain.Balance, bool)      { return nil, false }
func (noopBalanceCache) Set(context.Context, string, domain.Balance, int64) error { return nil }
func (noopBalanceCache) Invalidate(context.Context, string) error                 { return nil }

// noopPublisher is used when no event broker is configured.
type noopPublisher struct{}

func (noopPublisher) PublishTransactionAppended(context.Context, domain.TransactionAppendedEvent) error {
	return nil
}

var (
	_ portsrepo.BalanceCache   = noopBalanceCache{}
	_ portsrepo.EventPublisher = noopPublisher{}
)
