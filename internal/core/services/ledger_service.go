package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/core/statement"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerService authors and reads investor ledgers.
type ledgerService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryFacade
	investorRepo portsrepo.InvestorRepositoryFacade
	cache        portsrepo.BalanceCache
	publisher    portsrepo.EventPublisher
	formatter    statement.Formatter
	locks        *investorLocks
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithBalanceCache sets the cache used for ledger aggregates.
func WithBalanceCache(cache portsrepo.BalanceCache) LedgerServiceOption {
	return func(s *ledgerService) {
		if cache != nil {
			s.cache = cache
		}
	}
}

// WithEventPublisher sets the publisher notified after every append.
func WithEventPublisher(publisher portsrepo.EventPublisher) LedgerServiceOption {
	return func(s *ledgerService) {
		if publisher != nil {
			s.publisher = publisher
		}
	}
}

// WithStatementFormatter sets the formatter used for statement display strings.
func WithStatementFormatter(formatter statement.Formatter) LedgerServiceOption {
	return func(s *ledgerService) {
		if formatter != nil {
			s.formatter = formatter
		}
	}
}

// WithLedgerClock overrides the clock used to stamp statements.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options.
func NewLedgerService(txnRepo portsrepo.TransactionRepositoryFacade, investorRepo portsrepo.InvestorRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txnRepo:      txnRepo,
		investorRepo: investorRepo,
		cache:        noopBalanceCache{},
		publisher:    noopPublisher{},
		formatter:    plainFormatter{},
		locks:        newInvestorLocks(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// plainFormatter renders amounts with two decimals and no currency symbol.
type plainFormatter struct{}

func (plainFormatter) Format(amount decimal.Decimal) string { return amount.StringFixed(2) }

func (s *ledgerService) Credit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	return s.author(ctx, investorID, domain.Credit, req, userID, false)
}

func (s *ledgerService) CreditInitialInvestment(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	return s.author(ctx, investorID, domain.Credit, req, userID, true)
}

func (s *ledgerService) Debit(ctx context.Context, investorID string, req dto.CreateTransactionRequest, userID string) (*domain.AppendResult, error) {
	return s.author(ctx, investorID, domain.Debit, req, userID, false)
}

// author validates, appends and then refreshes derived state. The balance check runs inside
// the repository's atomic append against the balance read there, never against a cached figure.
func (s *ledgerService) author(ctx context.Context, investorID string, txType domain.TransactionType, req dto.CreateTransactionRequest, userID string, initial bool) (*domain.AppendResult, error) {
	logAttrs := []any{
		slog.String("investor_id", investorID),
		slog.String("type", string(txType)),
		slog.String("amount", req.Amount.String()),
		slog.String("user_id", userID),
	}

	// Amount shape is checked up front so malformed requests never take the lock.
	if err := ledger.ValidateCredit(req.Amount); err != nil {
		s.LogWarn(ctx, err, "Rejected transaction amount", logAttrs...)
		return nil, err
	}

	notes := ledger.DefaultNotes(txType, initial)
	if req.Notes != nil && *req.Notes != "" {
		notes = *req.Notes
	}

	newTxn := domain.NewTransaction{
		InvestorID:      investorID,
		TransactionType: txType,
		Amount:          req.Amount,
		Notes:           notes,
		CreatedBy:       userID,
	}

	unlock := s.locks.lock(investorID)
	result, err := s.txnRepo.AppendTransaction(ctx, newTxn, func(current domain.Balance) error {
		return ledger.Validate(txType, req.Amount, current.NetBalance)
	})
	unlock()
	if err != nil {
		s.LogWarn(ctx, err, "Transaction not appended", logAttrs...)
		return nil, fmt.Errorf("append %s for investor %s: %w", txType, investorID, err)
	}

	s.refreshCache(ctx, investorID, result.Balance, result.Transaction.Sequence)

	if err := s.publisher.PublishTransactionAppended(ctx, domain.NewTransactionAppendedEvent(*result)); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("investor_id", investorID),
			slog.String("transaction_id", result.Transaction.TransactionID))
	}

	s.LogInfo(ctx, "Transaction appended",
		append(logAttrs,
			slog.String("transaction_id", result.Transaction.TransactionID),
			slog.String("net_balance", result.Balance.NetBalance.String()))...)
	return result, nil
}

// refreshCache offers the cache a balance derived from the ledger up to sequence. The cache
// keeps whichever entry covers the later sequence. If the write fails the entry is dropped so
// the next read recomputes it.
func (s *ledgerService) refreshCache(ctx context.Context, investorID string, balance domain.Balance, sequence int64) {
	if err := s.cache.Set(ctx, investorID, balance, sequence); err != nil {
		s.LogWarn(ctx, err, "Failed to cache balance", slog.String("investor_id", investorID))
		if err := s.cache.Invalidate(ctx, investorID); err != nil {
			s.LogError(ctx, err, "Failed to invalidate cached balance", slog.String("investor_id", investorID))
		}
	}
}

func (s *ledgerService) ListTransactions(ctx context.Context, investorID string) ([]domain.Transaction, error) {
	txns, err := s.loadLedger(ctx, investorID)
	if err != nil {
		return nil, err
	}
	return ledger.Chronological(txns), nil
}

func (s *ledgerService) GetBalance(ctx context.Context, investorID string) (*domain.Balance, error) {
	// Deleted investors keep their cache entry until it expires; never serve it.
	if _, err := s.investorRepo.FindInvestorByID(ctx, investorID); err != nil {
		return nil, err
	}

	if cached, ok := s.cache.Get(ctx, investorID); ok {
		s.LogDebug(ctx, "Balance served from cache", slog.String("investor_id", investorID))
		return cached, nil
	}

	// Appends from this process wait until the recomputed balance is cached.
	unlock := s.locks.lock(investorID)
	defer unlock()

	txns, err := s.txnRepo.ListTransactionsByInvestor(ctx, investorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("investor_id", investorID))
		return nil, err
	}
	balance, err := ledger.ComputeBalance(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("investor_id", investorID))
		return nil, err
	}
	s.refreshCache(ctx, investorID, balance, ledger.LastSequence(txns))
	return &balance, nil
}

func (s *ledgerService) GetStatement(ctx context.Context, investorID string) (*domain.Statement, error) {
	txns, err := s.loadLedger(ctx, investorID)
	if err != nil {
		return nil, err
	}
	stmt, err := statement.Project(investorID, txns, s.formatter, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to project statement", slog.String("investor_id", investorID))
		return nil, err
	}
	return stmt, nil
}

func (s *ledgerService) Reconcile(ctx context.Context, investorID string, userID string) (*domain.Balance, error) {
	unlock := s.locks.lock(investorID)
	defer unlock()

	txns, err := s.loadLedger(ctx, investorID)
	if err != nil {
		return nil, err
	}
	balance, err := ledger.ComputeBalance(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute balance", slog.String("investor_id", investorID))
		return nil, err
	}

	if err := s.investorRepo.SetTotalMoneyInvested(ctx, investorID, balance.NetBalance, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store reconciled total", slog.String("investor_id", investorID))
		return nil, fmt.Errorf("reconcile investor %s: %w", investorID, err)
	}
	s.refreshCache(ctx, investorID, balance, ledger.LastSequence(txns))

	s.LogInfo(ctx, "Investor ledger reconciled",
		slog.String("investor_id", investorID),
		slog.String("net_balance", balance.NetBalance.String()),
		slog.String("user_id", userID))
	return &balance, nil
}

// loadLedger returns the raw log of an existing, non-deleted investor.
func (s *ledgerService) loadLedger(ctx context.Context, investorID string) ([]domain.Transaction, error) {
	if _, err := s.investorRepo.FindInvestorByID(ctx, investorID); err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactionsByInvestor(ctx, investorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("investor_id", investorID))
		return nil, err
	}
	return txns, nil
}
