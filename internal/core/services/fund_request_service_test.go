package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/core/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/SscSPs/investor_ledger/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type FundRequestServiceTestSuite struct {
	suite.Suite
	store    *memory.Store
	ledger   portssvc.LedgerSvcFacade
	service  portssvc.FundRequestSvcFacade
	ctx      context.Context
	reviewer string
}

func (s *FundRequestServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.reviewer = "admin_2"
	s.ledger = services.NewLedgerService(s.store, s.store)
	s.service = services.NewFundRequestService(s.store, s.store, s.ledger,
		services.WithFundRequestClock(func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }),
	)

	s.Require().NoError(s.store.SaveInvestor(s.ctx, domain.Investor{
		InvestorID: testInvestorID,
		Name:       "Asha",
		Status:     domain.InvestorActive,
	}))
}

func TestFundRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundRequestServiceTestSuite))
}

func (s *FundRequestServiceTestSuite) queue(typ domain.FundRequestType, amount int64) *domain.FundRequest {
	req, err := s.service.CreateFundRequest(s.ctx, typ, dto.CreateFundRequestRequest{
		InvestorID: testInvestorID,
		Amount:     decimal.NewFromInt(amount),
	}, testUserID)
	s.Require().NoError(err)
	return req
}

func (s *FundRequestServiceTestSuite) netBalance() decimal.Decimal {
	balance, err := s.ledger.GetBalance(s.ctx, testInvestorID)
	s.Require().NoError(err)
	return balance.NetBalance
}

func (s *FundRequestServiceTestSuite) TestCreate_QueuesPending() {
	notes := "Cheque 4411"
	req, err := s.service.CreateFundRequest(s.ctx, domain.DepositRequest, dto.CreateFundRequestRequest{
		InvestorID: testInvestorID,
		Amount:     decimal.NewFromInt(5000),
		Notes:      &notes,
	}, testUserID)

	s.Require().NoError(err)
	s.Equal(domain.FundRequestPending, req.Status)
	s.Equal(domain.DepositRequest, req.Type)
	s.Equal(notes, req.Notes)
	s.Equal(testUserID, req.CreatedBy)
	s.True(s.netBalance().IsZero())
}

func (s *FundRequestServiceTestSuite) TestCreate_Rejections() {
	_, err := s.service.CreateFundRequest(s.ctx, domain.DepositRequest, dto.CreateFundRequestRequest{
		InvestorID: testInvestorID,
		Amount:     decimal.RequireFromString("99.5"),
	}, testUserID)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.service.CreateFundRequest(s.ctx, domain.WithdrawalRequest, dto.CreateFundRequestRequest{
		InvestorID: "missing",
		Amount:     decimal.NewFromInt(100),
	}, testUserID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	requests, err := s.store.ListFundRequests(s.ctx, domain.FundRequestFilter{})
	s.Require().NoError(err)
	s.Empty(requests)
}

func (s *FundRequestServiceTestSuite) TestApproveDeposit_CreditsLedger() {
	req := s.queue(domain.DepositRequest, 5000)

	approved, err := s.service.ApproveFundRequest(s.ctx, domain.DepositRequest, req.RequestID, s.reviewer)

	s.Require().NoError(err)
	s.Equal(domain.FundRequestApproved, approved.Status)
	s.Require().NotNil(approved.TransactionID)
	s.Equal(s.reviewer, *approved.ReviewedBy)
	s.True(s.netBalance().Equal(decimal.NewFromInt(5000)))

	txns, err := s.ledger.ListTransactions(s.ctx, testInvestorID)
	s.Require().NoError(err)
	s.Require().Len(txns, 1)
	s.Equal(*approved.TransactionID, txns[0].TransactionID)
	s.Equal(domain.Credit, txns[0].TransactionType)
	s.Equal(s.reviewer, txns[0].CreatedBy)
}

func (s *FundRequestServiceTestSuite) TestApproveWithdrawal_OverBalanceStaysPending() {
	s.Require().NoError(s.approve(s.queue(domain.DepositRequest, 1000)))
	req := s.queue(domain.WithdrawalRequest, 1500)

	_, err := s.service.ApproveFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID, s.reviewer)

	s.ErrorIs(err, apperrors.ErrInsufficientBalance)
	got, err := s.service.GetFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID)
	s.Require().NoError(err)
	s.Equal(domain.FundRequestPending, got.Status)
	s.Nil(got.TransactionID)
	s.True(s.netBalance().Equal(decimal.NewFromInt(1000)))

	// Once funds arrive the same request goes through.
	s.Require().NoError(s.approve(s.queue(domain.DepositRequest, 500)))
	approved, err := s.service.ApproveFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID, s.reviewer)
	s.Require().NoError(err)
	s.Equal(domain.FundRequestApproved, approved.Status)
	s.True(s.netBalance().IsZero())
}

func (s *FundRequestServiceTestSuite) TestReject_LeavesLedgerUntouched() {
	req := s.queue(domain.WithdrawalRequest, 300)

	rejected, err := s.service.RejectFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID,
		dto.RejectFundRequestRequest{Reason: "Bank details missing"}, s.reviewer)

	s.Require().NoError(err)
	s.Equal(domain.FundRequestRejected, rejected.Status)
	s.Require().NotNil(rejected.RejectionReason)
	s.Equal("Bank details missing", *rejected.RejectionReason)
	s.Nil(rejected.TransactionID)
	s.True(s.netBalance().IsZero())

	_, err = s.service.ApproveFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID, s.reviewer)
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *FundRequestServiceTestSuite) TestApproveTwice_Conflicts() {
	req := s.queue(domain.DepositRequest, 700)
	s.Require().NoError(s.approve(req))

	_, err := s.service.ApproveFundRequest(s.ctx, domain.DepositRequest, req.RequestID, s.reviewer)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.True(s.netBalance().Equal(decimal.NewFromInt(700)))
}

func (s *FundRequestServiceTestSuite) TestWrongQueueIsNotFound() {
	req := s.queue(domain.DepositRequest, 700)

	_, err := s.service.GetFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.service.ApproveFundRequest(s.ctx, domain.WithdrawalRequest, req.RequestID, s.reviewer)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.True(s.netBalance().IsZero())
}

func (s *FundRequestServiceTestSuite) TestConcurrentApprovals_BookOnce() {
	req := s.queue(domain.DepositRequest, 900)

	var wg sync.WaitGroup
	errs := make([]error, 5)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.service.ApproveFundRequest(s.ctx, domain.DepositRequest, req.RequestID, s.reviewer)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			s.ErrorIs(err, apperrors.ErrConflict)
		}
	}
	s.Equal(1, successes)
	s.True(s.netBalance().Equal(decimal.NewFromInt(900)))
}

func (s *FundRequestServiceTestSuite) TestList_FiltersByStatus() {
	first := s.queue(domain.DepositRequest, 100)
	s.queue(domain.DepositRequest, 200)
	s.queue(domain.WithdrawalRequest, 50)
	s.Require().NoError(s.approve(first))

	pending, err := s.service.ListFundRequests(s.ctx, domain.DepositRequest, dto.ListFundRequestsParams{
		Status: domain.FundRequestPending,
		Limit:  50,
	})
	s.Require().NoError(err)
	s.Require().Len(pending, 1)
	s.True(pending[0].Amount.Equal(decimal.NewFromInt(200)))

	all, err := s.service.ListFundRequests(s.ctx, domain.DepositRequest, dto.ListFundRequestsParams{Limit: 50})
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *FundRequestServiceTestSuite) approve(req *domain.FundRequest) error {
	_, err := s.service.ApproveFundRequest(s.ctx, req.Type, req.RequestID, s.reviewer)
	return err
}
