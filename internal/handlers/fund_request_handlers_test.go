package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock FundRequestService ---
type MockFundRequestService struct {
	mock.Mock
}

func (m *MockFundRequestService) request(args mock.Arguments) (*domain.FundRequest, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FundRequest), args.Error(1)
}
func (m *MockFundRequestService) GetFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string) (*domain.FundRequest, error) {
	return m.request(m.Called(ctx, typ, requestID))
}
func (m *MockFundRequestService) ListFundRequests(ctx context.Context, typ domain.FundRequestType, params dto.ListFundRequestsParams) ([]domain.FundRequest, error) {
	args := m.Called(ctx, typ, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundRequest), args.Error(1)
}
func (m *MockFundRequestService) CreateFundRequest(ctx context.Context, typ domain.FundRequestType, req dto.CreateFundRequestRequest, userID string) (*domain.FundRequest, error) {
	return m.request(m.Called(ctx, typ, req, userID))
}
func (m *MockFundRequestService) ApproveFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, userID string) (*domain.FundRequest, error) {
	return m.request(m.Called(ctx, typ, requestID, userID))
}
func (m *MockFundRequestService) RejectFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, req dto.RejectFundRequestRequest, userID string) (*domain.FundRequest, error) {
	return m.request(m.Called(ctx, typ, requestID, req, userID))
}

var _ portssvc.FundRequestSvcFacade = (*MockFundRequestService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockDashboardService) ListRecentInvestments(ctx context.Context, limit int) ([]domain.RecentInvestment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentInvestment), args.Error(1)
}
func (m *MockDashboardService) ListPendingRequests(ctx context.Context, limit int) ([]domain.FundRequest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FundRequest), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

func fundRequest(id string, typ domain.FundRequestType, status domain.FundRequestStatus, amount int64) *domain.FundRequest {
	return &domain.FundRequest{
		RequestID:  id,
		InvestorID: "inv_1",
		Type:       typ,
		Amount:     decimal.NewFromInt(amount),
		Status:     status,
	}
}

func (suite *HandlerTestSuite) TestCreateDeposit() {
	suite.mockRequestService.On("CreateFundRequest", mock.Anything, domain.DepositRequest,
		mock.MatchedBy(func(r dto.CreateFundRequestRequest) bool {
			return r.InvestorID == "inv_1" && r.Amount.Equal(decimal.NewFromInt(2500))
		}),
		suite.userID,
	).Return(fundRequest("req_1", domain.DepositRequest, domain.FundRequestPending, 2500), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/deposits", `{"investorID": "inv_1", "amount": 2500}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.FundRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("req_1", resp.RequestID)
	suite.Equal(domain.FundRequestPending, resp.Status)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestCreateWithdrawal_InvalidBody() {
	for _, body := range []string{
		`{"investorID": "inv_1", "amount": 10.5}`,
		`{"investorID": "inv_1", "amount": 0}`,
		`{"amount": 100}`,
	} {
		w := suite.do(http.MethodPost, "/api/v1/withdrawals", body)
		suite.Equal(http.StatusBadRequest, w.Code, body)
	}
	suite.mockRequestService.AssertNotCalled(suite.T(), "CreateFundRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListDeposits_ByStatus() {
	suite.mockRequestService.On("ListFundRequests", mock.Anything, domain.DepositRequest,
		dto.ListFundRequestsParams{Status: domain.FundRequestPending, Limit: 50},
	).Return([]domain.FundRequest{*fundRequest("req_1", domain.DepositRequest, domain.FundRequestPending, 100)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/deposits?status=pending", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListFundRequestsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Requests, 1)
	suite.Equal(50, resp.Limit)

	w = suite.do(http.MethodGet, "/api/v1/deposits?status=settled", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestApproveWithdrawal_InsufficientBalance() {
	suite.mockRequestService.On("ApproveFundRequest", mock.Anything, domain.WithdrawalRequest, "req_9", suite.userID).
		Return(nil, fmt.Errorf("approve withdrawal request req_9: %w", apperrors.ErrInsufficientBalance)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/withdrawals/req_9/approve", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestApproveDeposit_AlreadyReviewed() {
	suite.mockRequestService.On("ApproveFundRequest", mock.Anything, domain.DepositRequest, "req_1", suite.userID).
		Return(nil, fmt.Errorf("%w: fund request req_1 is approved", apperrors.ErrConflict)).Once()

	w := suite.do(http.MethodPatch, "/api/v1/deposits/req_1/approve", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestApproveDeposit_Success() {
	txnID := "txn_1"
	approved := fundRequest("req_1", domain.DepositRequest, domain.FundRequestApproved, 100)
	approved.TransactionID = &txnID
	suite.mockRequestService.On("ApproveFundRequest", mock.Anything, domain.DepositRequest, "req_1", suite.userID).
		Return(approved, nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/deposits/req_1/approve", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FundRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.FundRequestApproved, resp.Status)
	suite.Require().NotNil(resp.TransactionID)
	suite.Equal("txn_1", *resp.TransactionID)
}

func (suite *HandlerTestSuite) TestRejectWithdrawal_WithAndWithoutReason() {
	suite.mockRequestService.On("RejectFundRequest", mock.Anything, domain.WithdrawalRequest, "req_2",
		dto.RejectFundRequestRequest{Reason: "Duplicate"}, suite.userID,
	).Return(fundRequest("req_2", domain.WithdrawalRequest, domain.FundRequestRejected, 100), nil).Once()
	suite.mockRequestService.On("RejectFundRequest", mock.Anything, domain.WithdrawalRequest, "req_3",
		dto.RejectFundRequestRequest{}, suite.userID,
	).Return(fundRequest("req_3", domain.WithdrawalRequest, domain.FundRequestRejected, 100), nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/withdrawals/req_2/reject", `{"reason": "Duplicate"}`)
	suite.Equal(http.StatusOK, w.Code)
	w = suite.do(http.MethodPatch, "/api/v1/withdrawals/req_3/reject", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.mockRequestService.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetWithdrawal_NotFound() {
	suite.mockRequestService.On("GetFundRequest", mock.Anything, domain.WithdrawalRequest, "req_1").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/withdrawals/req_1", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestDashboard() {
	suite.mockDashboard.On("GetDashboardStats", mock.Anything).Return(&domain.DashboardStats{
		TotalInvestment:         decimal.NewFromInt(6900),
		ActiveInvestors:         1,
		PendingWithdrawals:      1,
		PendingWithdrawalAmount: decimal.NewFromInt(400),
		PendingDepositAmount:    decimal.Zero,
	}, nil).Once()
	suite.mockDashboard.On("ListRecentInvestments", mock.Anything, 10).Return([]domain.RecentInvestment{{
		Transaction:  domain.Transaction{TransactionID: "txn_1", InvestorID: "inv_1", TransactionType: domain.Credit, Amount: decimal.NewFromInt(5000)},
		InvestorName: "Asha",
	}}, nil).Once()
	suite.mockDashboard.On("ListPendingRequests", mock.Anything, 3).
		Return([]domain.FundRequest{*fundRequest("req_1", domain.WithdrawalRequest, domain.FundRequestPending, 400)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard/stats", nil)
	suite.Equal(http.StatusOK, w.Code)
	var stats domain.DashboardStats
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &stats))
	suite.True(stats.TotalInvestment.Equal(decimal.NewFromInt(6900)))

	w = suite.do(http.MethodGet, "/api/v1/dashboard/recent-investments", nil)
	suite.Equal(http.StatusOK, w.Code)
	var recent []dto.RecentInvestmentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &recent))
	suite.Require().Len(recent, 1)
	suite.Equal("Asha", recent[0].InvestorName)
	suite.Equal("txn_1", recent[0].TransactionID)

	w = suite.do(http.MethodGet, "/api/v1/dashboard/pending-requests?limit=3", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/dashboard/pending-requests?limit=0", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDashboard.AssertExpectations(suite.T())
}
