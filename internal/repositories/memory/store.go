// Package memory is an in-process implementation of the repository ports, used for local
// runs and tests. A single mutex guards all state so every append is atomic.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store keeps investors, their ledgers and fund requests in memory.
type Store struct {
	mu           sync.RWMutex
	investors    map[string]domain.Investor
	transactions map[string][]domain.Transaction // by investor, insertion order
	requests     map[string]domain.FundRequest
	sequence     int64
	now          func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to date appended transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(options ...Option) *Store {
	s := &Store{
		investors:    make(map[string]domain.Investor),
		transactions: make(map[string][]domain.Transaction),
		requests:     make(map[string]domain.FundRequest),
		now:          time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

var (
	_ portsrepo.InvestorRepositoryFacade    = (*Store)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.FundRequestRepositoryFacade = (*Store)(nil)
)

// Provider exposes the store through the repository provider used by the service container.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvestorRepo:    s,
		TransactionRepo: s,
		FundRequestRepo: s,
	}
}

func (s *Store) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.investors[investor.InvestorID]; exists {
		return fmt.Errorf("%w: investor %s", apperrors.ErrDuplicate, investor.InvestorID)
	}
	s.investors[investor.InvestorID] = cloneInvestor(investor)
	return nil
}

func (s *Store) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.activeInvestor(investorID)
	if !ok {
		return nil, fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	out := cloneInvestor(inv)
	return &out, nil
}

func (s *Store) ListInvestors(ctx context.Context, limit int, offset int) ([]domain.Investor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Investor, 0, len(s.investors))
	for _, inv := range s.investors {
		if !inv.IsDeleted {
			all = append(all, cloneInvestor(inv))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].JoinDate.Equal(all[j].JoinDate) {
			return all[i].JoinDate.After(all[j].JoinDate)
		}
		return all[i].InvestorID < all[j].InvestorID
	})

	if offset >= len(all) {
		return []domain.Investor{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (s *Store) CountInvestors(ctx context.Context, since time.Time) (portsrepo.InvestorCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := portsrepo.InvestorCounts{TotalInvested: decimal.Zero}
	for _, inv := range s.investors {
		if inv.IsDeleted {
			continue
		}
		counts.Total++
		counts.TotalInvested = counts.TotalInvested.Add(inv.TotalMoneyInvested)
		if inv.Status == domain.InvestorActive {
			counts.Active++
		}
		if !inv.JoinDate.Before(since) {
			counts.JoinedSince++
		}
	}
	return counts, nil
}

func (s *Store) UpdateInvestorProfile(ctx context.Context, investorID string, upd domain.InvestorProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.activeInvestor(investorID)
	if !ok {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	if upd.Name != nil {
		inv.Name = *upd.Name
	}
	if upd.PhoneNumber != nil {
		inv.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Email != nil {
		inv.Email = *upd.Email
	}
	if upd.Address != nil {
		addr := *upd.Address
		inv.Address = &addr
	}
	if upd.BankDetails != nil {
		bank := *upd.BankDetails
		inv.BankDetails = &bank
	}
	if upd.InvestmentPlanID != nil {
		inv.InvestmentPlanID = stringPtr(*upd.InvestmentPlanID)
	}
	if upd.YearlyPlanID != nil {
		inv.YearlyPlanID = stringPtr(*upd.YearlyPlanID)
	}
	if upd.Status != nil {
		inv.Status = *upd.Status
	}
	inv.LastUpdatedAt = upd.UpdatedAt
	inv.LastUpdatedBy = upd.UpdatedBy
	s.investors[investorID] = inv
	return nil
}

func (s *Store) SoftDeleteInvestor(ctx context.Context, investorID string, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.activeInvestor(investorID)
	if !ok {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	inv.IsDeleted = true
	inv.LastUpdatedAt = at
	inv.LastUpdatedBy = userID
	s.investors[investorID] = inv
	return nil
}

func (s *Store) SetTotalMoneyInvested(ctx context.Context, investorID string, amount decimal.Decimal, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.activeInvestor(investorID)
	if !ok {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	inv.TotalMoneyInvested = amount
	inv.LastUpdatedAt = at
	inv.LastUpdatedBy = userID
	s.investors[investorID] = inv
	return nil
}

func (s *Store) ListTransactionsByInvestor(ctx context.Context, investorID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := s.transactions[investorID]
	out := make([]domain.Transaction, len(txns))
	copy(out, txns)
	return out, nil
}

func (s *Store) ListRecentTransactions(ctx context.Context, txType domain.TransactionType, limit int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Transaction
	for investorID, txns := range s.transactions {
		if _, ok := s.activeInvestor(investorID); !ok {
			continue
		}
		for _, txn := range txns {
			if txn.TransactionType == txType {
				out = append(out, txn)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sequence > out[j].Sequence })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// AppendTransaction computes the balance from the stored log, consults admit and stores the
// transaction without releasing the store lock in between.
func (s *Store) AppendTransaction(ctx context.Context, newTxn domain.NewTransaction, admit portsrepo.AdmitFunc) (*domain.AppendResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.activeInvestor(newTxn.InvestorID)
	if !ok {
		return nil, fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, newTxn.InvestorID)
	}

	current, err := ledger.ComputeBalance(s.transactions[newTxn.InvestorID])
	if err != nil {
		return nil, err
	}
	if admit != nil {
		if err := admit(current); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	s.sequence++
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		InvestorID:      newTxn.InvestorID,
		TransactionType: newTxn.TransactionType,
		Amount:          newTxn.Amount,
		Notes:           newTxn.Notes,
		Date:            now,
		Sequence:        s.sequence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newTxn.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: newTxn.CreatedBy,
		},
	}
	s.transactions[newTxn.InvestorID] = append(s.transactions[newTxn.InvestorID], txn)

	balance := ledger.ApplyDelta(current, txn)
	inv.TotalMoneyInvested = balance.NetBalance
	inv.LastUpdatedAt = now
	inv.LastUpdatedBy = newTxn.CreatedBy
	s.investors[newTxn.InvestorID] = inv

	return &domain.AppendResult{Transaction: txn, Balance: balance}, nil
}

// activeInvestor must be called with s.mu held.
func (s *Store) activeInvestor(investorID string) (domain.Investor, bool) {
	inv, ok := s.investors[investorID]
	if !ok || inv.IsDeleted {
		return domain.Investor{}, false
	}
	return inv, true
}

func cloneInvestor(inv domain.Investor) domain.Investor {
	if inv.Address != nil {
		addr := *inv.Address
		inv.Address = &addr
	}
	if inv.BankDetails != nil {
		bank := *inv.BankDetails
		inv.BankDetails = &bank
	}
	if inv.InvestmentPlanID != nil {
		inv.InvestmentPlanID = stringPtr(*inv.InvestmentPlanID)
	}
	if inv.YearlyPlanID != nil {
		inv.YearlyPlanID = stringPtr(*inv.YearlyPlanID)
	}
	return inv
}

func stringPtr(s string) *string { return &s }
