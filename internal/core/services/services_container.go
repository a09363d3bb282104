package services

import (
	"fmt"

	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/platform/config"
	"github.com/SscSPs/investor_ledger/internal/utils"
)

// Integrations carries the optional collaborators of the ledger. Nil fields fall back to no-ops.
type Integrations struct {
	Cache     portsrepo.BalanceCache
	Publisher portsrepo.EventPublisher
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, integrations Integrations) (*portssvc.ServiceContainer, error) {
	formatter, err := utils.NewMoneyFormatter(cfg.DisplayCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to create statement formatter: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	// Ledger first since investor creation books the initial investment through it
	container.Ledger = NewLedgerService(
		repos.TransactionRepo,
		repos.InvestorRepo,
		WithBalanceCache(integrations.Cache),
		WithEventPublisher(integrations.Publisher),
		WithStatementFormatter(formatter),
	)

	container.Investor = NewInvestorService(
		repos.InvestorRepo,
		container.Ledger,
		WithInvestorBalanceCache(integrations.Cache),
	)

	container.FundRequest = NewFundRequestService(
		repos.FundRequestRepo,
		repos.InvestorRepo,
		container.Ledger,
	)

	container.Dashboard = NewDashboardService(
		repos.InvestorRepo,
		repos.TransactionRepo,
		repos.FundRequestRepo,
	)

	return container, nil
}
