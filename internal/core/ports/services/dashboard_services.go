package services

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
)

// DashboardSvc serves the admin dashboard widgets
type DashboardSvc interface {
	// GetDashboardStats returns invested totals and the open request queues.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// ListRecentInvestments returns the latest credits, newest first.
	ListRecentInvestments(ctx context.Context, limit int) ([]domain.RecentInvestment, error)

	// ListPendingRequests returns pending requests of both types, newest first.
	ListPendingRequests(ctx context.Context, limit int) ([]domain.FundRequest, error)
}
