package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type dashboardService struct {
	BaseService
	investorRepo portsrepo.InvestorReader
	txnRepo      portsrepo.TransactionReader
	requestRepo  portsrepo.FundRequestReader
}

// NewDashboardService creates the read-only service behind the admin dashboard.
func NewDashboardService(investorRepo portsrepo.InvestorReader, txnRepo portsrepo.TransactionReader, requestRepo portsrepo.FundRequestReader) portssvc.DashboardSvc {
	return &dashboardService{
		investorRepo: investorRepo,
		txnRepo:      txnRepo,
		requestRepo:  requestRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	counts, err := s.investorRepo.CountInvestors(ctx, time.Time{})
	if err != nil {
		s.LogError(ctx, err, "Failed to count investors")
		return nil, fmt.Errorf("failed to count investors: %w", err)
	}
	pending, err := s.requestRepo.SumPendingFundRequests(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum pending fund requests")
		return nil, fmt.Errorf("failed to sum pending fund requests: %w", err)
	}

	stats := &domain.DashboardStats{
		TotalInvestment:         counts.TotalInvested,
		TotalInvestors:          counts.Total,
		ActiveInvestors:         counts.Active,
		PendingDepositAmount:    decimal.Zero,
		PendingWithdrawalAmount: decimal.Zero,
	}
	for _, total := range pending {
		switch total.Type {
		case domain.DepositRequest:
			stats.PendingDeposits = total.Count
			stats.PendingDepositAmount = total.Amount
		case domain.WithdrawalRequest:
			stats.PendingWithdrawals = total.Count
			stats.PendingWithdrawalAmount = total.Amount
		}
	}
	return stats, nil
}

func (s *dashboardService) ListRecentInvestments(ctx context.Context, limit int) ([]domain.RecentInvestment, error) {
	txns, err := s.txnRepo.ListRecentTransactions(ctx, domain.Credit, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recent credits")
		return nil, err
	}

	names := make(map[string]string)
	out := make([]domain.RecentInvestment, 0, len(txns))
	for _, txn := range txns {
		name, ok := names[txn.InvestorID]
		if !ok {
			inv, err := s.investorRepo.FindInvestorByID(ctx, txn.InvestorID)
			switch {
			case err == nil:
				name = inv.Name
			case errors.Is(err, apperrors.ErrNotFound):
				// deleted since the listing; keep the entry unnamed
			default:
				return nil, err
			}
			names[txn.InvestorID] = name
		}
		out = append(out, domain.RecentInvestment{Transaction: txn, InvestorName: name})
	}
	return out, nil
}

func (s *dashboardService) ListPendingRequests(ctx context.Context, limit int) ([]domain.FundRequest, error) {
	requests, err := s.requestRepo.ListFundRequests(ctx, domain.FundRequestFilter{
		Status: domain.FundRequestPending,
		Limit:  limit,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending fund requests")
		return nil, err
	}
	return requests, nil
}
