package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInitialCreditFailed is returned with a stored investor whose initial investment
// could not be booked. The investor exists; the credit can be retried through the ledger.
var ErrInitialCreditFailed = errors.New("investor created but initial investment was not credited")

type investorService struct {
	BaseService
	investorRepo portsrepo.InvestorRepositoryFacade
	ledgerSvc    portssvc.LedgerWriterSvc
	cache        portsrepo.BalanceCache
}

// InvestorServiceOption is a functional option for configuring the investor service
type InvestorServiceOption func(*investorService)

// WithInvestorBalanceCache sets the cache dropped when an investor is deleted.
func WithInvestorBalanceCache(cache portsrepo.BalanceCache) InvestorServiceOption {
	return func(s *investorService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithInvestorClock overrides the clock used for join dates and stats.
func WithInvestorClock(now func() time.Time) InvestorServiceOption {
	return func(s *investorService) {
		s.now = now
	}
}

// NewInvestorService creates a new investor service.
func NewInvestorService(repo portsrepo.InvestorRepositoryFacade, ledgerSvc portssvc.LedgerWriterSvc, options ...InvestorServiceOption) portssvc.InvestorSvcFacade {
	svc := &investorService{
		investorRepo: repo,
		ledgerSvc:    ledgerSvc,
		cache:        noopBalanceCache{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InvestorSvcFacade = (*investorService)(nil)

func (s *investorService) CreateInvestor(ctx context.Context, req dto.CreateInvestorRequest, userID string) (*domain.Investor, error) {
	hasInitial := req.InitialInvestment != nil && !req.InitialInvestment.IsZero()
	if hasInitial {
		if err := ledger.ValidateCredit(*req.InitialInvestment); err != nil {
			s.LogWarn(ctx, err, "Rejected initial investment", slog.String("user_id", userID))
			return nil, err
		}
	}

	now := s.Now()
	status := req.Status
	if status == "" {
		status = domain.InvestorActive
	}

	investor := domain.Investor{
		InvestorID:         uuid.NewString(),
		Name:               req.Name,
		PhoneNumber:        req.PhoneNumber,
		Email:              req.Email,
		Address:            req.Address,
		BankDetails:        req.BankDetails,
		InvestmentPlanID:   req.InvestmentPlanID,
		YearlyPlanID:       req.YearlyPlanID,
		TotalMoneyInvested: decimal.Zero,
		TotalReturns:       decimal.Zero,
		Status:             status,
		JoinDate:           now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.investorRepo.SaveInvestor(ctx, investor); err != nil {
		s.LogError(ctx, err, "Failed to save investor", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save investor: %w", err)
	}
	s.LogInfo(ctx, "Investor created",
		slog.String("investor_id", investor.InvestorID),
		slog.String("user_id", userID))

	if !hasInitial {
		return &investor, nil
	}

	result, err := s.ledgerSvc.CreditInitialInvestment(ctx, investor.InvestorID, dto.CreateTransactionRequest{
		Amount: *req.InitialInvestment,
	}, userID)
	if err != nil {
		s.LogError(ctx, err, "Initial investment not credited",
			slog.String("investor_id", investor.InvestorID),
			slog.String("amount", req.InitialInvestment.String()))
		return &investor, fmt.Errorf("%w: %w", ErrInitialCreditFailed, err)
	}
	investor.TotalMoneyInvested = result.Balance.NetBalance
	return &investor, nil
}

func (s *investorService) GetInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	investor, err := s.investorRepo.FindInvestorByID(ctx, investorID)
	if err != nil {
		return nil, err
	}
	return investor, nil
}

func (s *investorService) ListInvestors(ctx context.Context, params dto.ListInvestorsParams) ([]domain.Investor, error) {
	investors, err := s.investorRepo.ListInvestors(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investors",
			slog.Int("limit", params.Limit),
			slog.Int("offset", params.Offset))
		return nil, fmt.Errorf("failed to list investors: %w", err)
	}
	return investors, nil
}

// GetStats counts investors and the month-over-month growth of the base.
// growthRate is the percentage of this month's joiners relative to everyone who joined before.
func (s *investorService) GetStats(ctx context.Context) (*domain.InvestorStats, error) {
	now := s.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	counts, err := s.investorRepo.CountInvestors(ctx, monthStart)
	if err != nil {
		s.LogError(ctx, err, "Failed to count investors")
		return nil, fmt.Errorf("failed to count investors: %w", err)
	}

	return &domain.InvestorStats{
		TotalInvestors:     counts.Total,
		ActiveInvestors:    counts.Active,
		ThisMonthInvestors: counts.JoinedSince,
		GrowthRate:         growthRate(counts.Total, counts.JoinedSince),
	}, nil
}

func growthRate(total, thisMonth int) float64 {
	previous := total - thisMonth
	switch {
	case previous > 0:
		return float64(thisMonth) * 100 / float64(previous)
	case thisMonth > 0:
		return 100
	default:
		return 0
	}
}

func (s *investorService) UpdateInvestor(ctx context.Context, investorID string, req dto.UpdateInvestorRequest, userID string) (*domain.Investor, error) {
	if _, err := s.investorRepo.FindInvestorByID(ctx, investorID); err != nil {
		return nil, err
	}

	if err := s.investorRepo.UpdateInvestorProfile(ctx, investorID, req.ToProfileUpdate(userID, s.Now())); err != nil {
		s.LogError(ctx, err, "Failed to update investor",
			slog.String("investor_id", investorID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update investor: %w", err)
	}
	s.LogInfo(ctx, "Investor updated",
		slog.String("investor_id", investorID),
		slog.String("user_id", userID))

	return s.investorRepo.FindInvestorByID(ctx, investorID)
}

func (s *investorService) DeleteInvestor(ctx context.Context, investorID string, userID string) error {
	if err := s.investorRepo.SoftDeleteInvestor(ctx, investorID, userID, s.Now()); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, investorID); err != nil {
		s.LogWarn(ctx, err, "Failed to invalidate cached balance", slog.String("investor_id", investorID))
	}
	s.LogInfo(ctx, "Investor deleted",
		slog.String("investor_id", investorID),
		slog.String("user_id", userID))
	return nil
}
