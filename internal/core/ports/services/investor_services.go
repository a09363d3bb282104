package services

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/dto"
)

// InvestorReaderSvc defines read operations for investors
type InvestorReaderSvc interface {
	// GetInvestorByID retrieves a non-deleted investor.
	GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error)

	// ListInvestors retrieves a page of non-deleted investors.
	ListInvestors(ctx context.Context, params dto.ListInvestorsParams) ([]domain.Investor, error)

	// GetStats computes the investor dashboard figures.
	GetStats(ctx context.Context) (*domain.InvestorStats, error)
}

// InvestorWriterSvc defines write operations for investors
type InvestorWriterSvc interface {
	// CreateInvestor registers an investor and books its initial investment, if any.
	// When the investor was stored but the initial credit failed, it returns the investor
	// together with an error wrapping ErrInitialCreditFailed.
	CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, userID string) (*domain.Investor, error)

	// UpdateInvestor edits the investor's profile. Ledger figures are not editable.
	UpdateInvestor(ctx context.Context, investorID string, req dto.UpdateInvestorRequest, userID string) (*domain.Investor, error)

	// DeleteInvestor soft deletes an investor.
	DeleteInvestor(ctx context.Context, investorID string, userID string) error
}

// InvestorSvcFacade combines all investor service interfaces
type InvestorSvcFacade interface {
	InvestorReaderSvc
	InvestorWriterSvc
}
