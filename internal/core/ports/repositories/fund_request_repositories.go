package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
)

// FundRequestReader defines read operations for deposit and withdrawal requests
type FundRequestReader interface {
	// FindFundRequestByID returns apperrors.ErrNotFound for unknown IDs.
	FindFundRequestByID(ctx context.Context, requestID string) (*domain.FundRequest, error)

	// ListFundRequests returns matching requests, newest first.
	ListFundRequests(ctx context.Context, filter domain.FundRequestFilter) ([]domain.FundRequest, error)

	// SumPendingFundRequests totals pending requests per type. Types without any are omitted.
	SumPendingFundRequests(ctx context.Context) ([]domain.PendingFundRequestTotal, error)
}

// FundRequestWriter defines the review state transitions of a request:
// pending -> processing -> approved | rejected, or processing -> pending on release.
type FundRequestWriter interface {
	// SaveFundRequest persists a new request.
	SaveFundRequest(ctx context.Context, req domain.FundRequest) error

	// ClaimFundRequest atomically moves a pending request to processing and returns it.
	// Requests in any other state yield apperrors.ErrConflict.
	ClaimFundRequest(ctx context.Context, requestID string, userID string, at time.Time) (*domain.FundRequest, error)

	// ReleaseFundRequest returns a processing request to pending.
	ReleaseFundRequest(ctx context.Context, requestID string, userID string, at time.Time) error

	// ResolveFundRequest moves a processing request to its final status.
	ResolveFundRequest(ctx context.Context, requestID string, res domain.FundRequestResolution) (*domain.FundRequest, error)
}

// FundRequestRepositoryFacade combines all fund request repository interfaces
type FundRequestRepositoryFacade interface {
	FundRequestReader
	FundRequestWriter
}
