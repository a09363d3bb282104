package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock InvestorRepository ---
type MockInvestorRepository struct {
	mock.Mock
}

var _ portsrepo.InvestorRepositoryFacade = (*MockInvestorRepository)(nil)

func (m *MockInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) ListInvestors(ctx context.Context, limit int, offset int) ([]domain.Investor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investor), args.Error(1)
}

func (m *MockInvestorRepository) CountInvestors(ctx context.Context, since time.Time) (portsrepo.InvestorCounts, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(portsrepo.InvestorCounts), args.Error(1)
}

func (m *MockInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	args := m.Called(ctx, investor)
	return args.Error(0)
}

func (m *MockInvestorRepository) UpdateInvestorProfile(ctx context.Context, investorID string, upd domain.InvestorProfileUpdate) error {
	args := m.Called(ctx, investorID, upd)
	return args.Error(0)
}

func (m *MockInvestorRepository) SoftDeleteInvestor(ctx context.Context, investorID string, userID string, at time.Time) error {
	args := m.Called(ctx, investorID, userID, at)
	return args.Error(0)
}

func (m *MockInvestorRepository) SetTotalMoneyInvested(ctx context.Context, investorID string, amount decimal.Decimal, userID string, at time.Time) error {
	args := m.Called(ctx, investorID, amount, userID, at)
	return args.Error(0)
}

// --- Mock LedgerWriterSvc (as used by InvestorService) ---
type MockLedgerWriter struct {
	mock.Mock
}

var _ portssvc.LedgerWriterSvc = (*MockLedgerWriter)(nil)

func (m *MockLedgerWriter) Credit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	args := m.Called(ctx, investorID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppendResult), args.Error(1)
}

func (m *MockLedgerWriter) CreditInitialInvestment(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	args := m.Called(ctx, investorID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppendResult), args.Error(1)
}

func (m *MockLedgerWriter) Debit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	args := m.Called(ctx, investorID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppendResult), args.Error(1)
}

func (m *MockLedgerWriter) Reconcile(ctx context.Context, investorID string, userID string) (*domain.Balance, error) {
	args := m.Called(ctx, investorID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Balance), args.Error(1)
}

// --- Mock BalanceCache ---
type MockBalanceCache struct {
	mock.Mock
}

var _ portsrepo.BalanceCache = (*MockBalanceCache)(nil)

func (m *MockBalanceCache) Get(ctx context.Context, investorID string) (*domain.Balance, bool) {
	args := m.Called(ctx, investorID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Balance), args.Bool(1)
}

func (m *MockBalanceCache) Set(ctx context.Context, investorID string, balance domain.Balance, sequence int64) error {
	args := m.Called(ctx, investorID, balance, sequence)
	return args.Error(0)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, investorID string) error {
	args := m.Called(ctx, investorID)
	return args.Error(0)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

var _ portsrepo.EventPublisher = (*MockEventPublisher)(nil)

func (m *MockEventPublisher) PublishTransactionAppended(ctx context.Context, event domain.TransactionAppendedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
