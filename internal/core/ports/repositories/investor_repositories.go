package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvestorCounts are the raw figures behind the investor stats.
type InvestorCounts struct {
	Total         int
	Active        int
	JoinedSince   int
	TotalInvested decimal.Decimal // sum of cached ledger balances
}

// InvestorReader defines read operations for investor data
type InvestorReader interface {
	// FindInvestorByID retrieves a non-deleted investor. Returns apperrors.ErrNotFound otherwise.
	FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)

	// ListInvestors retrieves non-deleted investors ordered by join date, newest first.
	ListInvestors(ctx context.Context, limit int, offset int) ([]domain.Investor, error)

	// CountInvestors counts non-deleted investors; JoinedSince counts those who joined at or after since.
	CountInvestors(ctx context.Context, since time.Time) (InvestorCounts, error)
}

// InvestorWriter defines write operations for investor data.
// None of them touch the ledger; TotalMoneyInvested is only written by SetTotalMoneyInvested
// and by TransactionAppender.
type InvestorWriter interface {
	// SaveInvestor persists a new investor.
	SaveInvestor(ctx context.Context, investor domain.Investor) error

	// UpdateInvestorProfile applies the non-nil fields of upd.
	UpdateInvestorProfile(ctx context.Context, investorID string, upd domain.InvestorProfileUpdate) error

	// SoftDeleteInvestor marks an investor deleted. Its ledger is retained.
	SoftDeleteInvestor(ctx context.Context, investorID string, userID string, at time.Time) error

	// SetTotalMoneyInvested overwrites the cached ledger balance on the investor row.
	SetTotalMoneyInvested(ctx context.Context, investorID string, amount decimal.Decimal, userID string, at time.Time) error
}

// InvestorRepositoryFacade combines all investor-related repository interfaces
type InvestorRepositoryFacade interface {
	InvestorReader
	InvestorWriter
}
