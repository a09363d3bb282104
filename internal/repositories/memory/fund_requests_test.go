package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRequest(t *testing.T, s *memory.Store, id string, typ domain.FundRequestType, amount int64, created time.Time) {
	t.Helper()
	require.NoError(t, s.SaveFundRequest(context.Background(), domain.FundRequest{
		RequestID:  id,
		InvestorID: "inv_1",
		Type:       typ,
		Amount:     decimal.NewFromInt(amount),
		Status:     domain.FundRequestPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     created,
			CreatedBy:     "admin_1",
			LastUpdatedAt: created,
			LastUpdatedBy: "admin_1",
		},
	}))
}

func TestFundRequests_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	saveRequest(t, s, "dep_old", domain.DepositRequest, 1000, base)
	saveRequest(t, s, "dep_new", domain.DepositRequest, 2000, base.Add(time.Hour))
	saveRequest(t, s, "wd_1", domain.WithdrawalRequest, 500, base.Add(2*time.Hour))

	deposits, err := s.ListFundRequests(ctx, domain.FundRequestFilter{Type: domain.DepositRequest})
	require.NoError(t, err)
	require.Len(t, deposits, 2)
	assert.Equal(t, "dep_new", deposits[0].RequestID)
	assert.Equal(t, "dep_old", deposits[1].RequestID)

	page, err := s.ListFundRequests(ctx, domain.FundRequestFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "dep_new", page[0].RequestID)

	assert.ErrorIs(t, s.SaveFundRequest(ctx, domain.FundRequest{RequestID: "wd_1"}), apperrors.ErrDuplicate)
}

func TestFundRequests_ReviewTransitions(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	at := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
	saveRequest(t, s, "dep_1", domain.DepositRequest, 1000, at)

	claimed, err := s.ClaimFundRequest(ctx, "dep_1", "admin_2", at)
	require.NoError(t, err)
	assert.Equal(t, domain.FundRequestProcessing, claimed.Status)

	_, err = s.ClaimFundRequest(ctx, "dep_1", "admin_3", at)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, s.ReleaseFundRequest(ctx, "dep_1", "admin_2", at))
	assert.ErrorIs(t, s.ReleaseFundRequest(ctx, "dep_1", "admin_2", at), apperrors.ErrConflict)

	_, err = s.ClaimFundRequest(ctx, "dep_1", "admin_2", at)
	require.NoError(t, err)
	txnID := "txn_1"
	resolved, err := s.ResolveFundRequest(ctx, "dep_1", domain.FundRequestResolution{
		Status:        domain.FundRequestApproved,
		TransactionID: &txnID,
		ReviewedBy:    "admin_2",
		ReviewedAt:    at,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FundRequestApproved, resolved.Status)
	assert.Equal(t, "txn_1", *resolved.TransactionID)
	assert.Equal(t, "admin_2", *resolved.ReviewedBy)

	_, err = s.ClaimFundRequest(ctx, "dep_1", "admin_2", at)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	_, err = s.ClaimFundRequest(ctx, "missing", "admin_2", at)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFundRequests_ResolveNeedsFinalStatus(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	at := time.Now()
	saveRequest(t, s, "dep_1", domain.DepositRequest, 1000, at)
	_, err := s.ClaimFundRequest(ctx, "dep_1", "admin_1", at)
	require.NoError(t, err)

	_, err = s.ResolveFundRequest(ctx, "dep_1", domain.FundRequestResolution{Status: domain.FundRequestPending})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestFundRequests_OnlyOneConcurrentClaimWins(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	saveRequest(t, s, "wd_1", domain.WithdrawalRequest, 1000, time.Now())

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.ClaimFundRequest(ctx, "wd_1", "admin_1", time.Now()); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestSumPendingFundRequests(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	at := time.Now()
	saveRequest(t, s, "dep_1", domain.DepositRequest, 1000, at)
	saveRequest(t, s, "dep_2", domain.DepositRequest, 1500, at)
	saveRequest(t, s, "wd_1", domain.WithdrawalRequest, 700, at)
	saveRequest(t, s, "wd_2", domain.WithdrawalRequest, 300, at)
	_, err := s.ClaimFundRequest(ctx, "wd_2", "admin_1", at)
	require.NoError(t, err)

	totals, err := s.SumPendingFundRequests(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, domain.DepositRequest, totals[0].Type)
	assert.Equal(t, 2, totals[0].Count)
	assert.True(t, totals[0].Amount.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, domain.WithdrawalRequest, totals[1].Type)
	assert.Equal(t, 1, totals[1].Count)
	assert.True(t, totals[1].Amount.Equal(decimal.NewFromInt(700)))
}

func TestListRecentTransactions(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedInvestor(t, s, "inv_1", time.Now())
	seedInvestor(t, s, "inv_2", time.Now())
	seedInvestor(t, s, "inv_gone", time.Now())

	_, err := appendTxn(s, "inv_1", domain.Credit, 100)
	require.NoError(t, err)
	_, err = appendTxn(s, "inv_gone", domain.Credit, 150)
	require.NoError(t, err)
	_, err = appendTxn(s, "inv_2", domain.Credit, 200)
	require.NoError(t, err)
	_, err = appendTxn(s, "inv_1", domain.Debit, 50)
	require.NoError(t, err)
	_, err = appendTxn(s, "inv_1", domain.Credit, 300)
	require.NoError(t, err)
	require.NoError(t, s.SoftDeleteInvestor(ctx, "inv_gone", "admin_1", time.Now()))

	recent, err := s.ListRecentTransactions(ctx, domain.Credit, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.True(t, recent[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, recent[1].Amount.Equal(decimal.NewFromInt(200)))

	all, err := s.ListRecentTransactions(ctx, domain.Credit, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
