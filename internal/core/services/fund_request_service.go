package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/investor_ledger/internal/core/ports/services"
	"github.com/SscSPs/investor_ledger/internal/dto"
	"github.com/google/uuid"
)

// fundRequestService runs the deposit and withdrawal review queues. Approval is the only
// path from a request to the ledger and always goes through the ledger service.
type fundRequestService struct {
	BaseService
	requestRepo  portsrepo.FundRequestRepositoryFacade
	investorRepo portsrepo.InvestorReader
	ledgerSvc    portssvc.LedgerWriterSvc
}

// FundRequestServiceOption is a functional option for configuring the fund request service
type FundRequestServiceOption func(*fundRequestService)

// WithFundRequestClock overrides the clock used for audit fields.
func WithFundRequestClock(now func() time.Time) FundRequestServiceOption {
	return func(s *fundRequestService) {
		s.now = now
	}
}

// NewFundRequestService creates a new fund request service.
func NewFundRequestService(requestRepo portsrepo.FundRequestRepositoryFacade, investorRepo portsrepo.InvestorReader, ledgerSvc portssvc.LedgerWriterSvc, options ...FundRequestServiceOption) portssvc.FundRequestSvcFacade {
	svc := &fundRequestService{
		requestRepo:  requestRepo,
		investorRepo: investorRepo,
		ledgerSvc:    ledgerSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.FundRequestSvcFacade = (*fundRequestService)(nil)

func (s *fundRequestService) CreateFundRequest(ctx context.Context, typ domain.FundRequestType, req dto.CreateFundRequestRequest, userID string) (*domain.FundRequest, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("%w: unknown fund request type %q", apperrors.ErrInvalidInput, typ)
	}
	if err := ledger.ValidateCredit(req.Amount); err != nil {
		s.LogWarn(ctx, err, "Rejected fund request amount", slog.String("type", string(typ)))
		return nil, err
	}
	if _, err := s.investorRepo.FindInvestorByID(ctx, req.InvestorID); err != nil {
		return nil, err
	}

	now := s.Now()
	request := domain.FundRequest{
		RequestID:  uuid.NewString(),
		InvestorID: req.InvestorID,
		Type:       typ,
		Amount:     req.Amount,
		Status:     domain.FundRequestPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if req.Notes != nil {
		request.Notes = *req.Notes
	}

	if err := s.requestRepo.SaveFundRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save fund request", slog.String("investor_id", req.InvestorID))
		return nil, fmt.Errorf("failed to save %s request: %w", typ, err)
	}
	s.LogInfo(ctx, "Fund request queued",
		slog.String("request_id", request.RequestID),
		slog.String("type", string(typ)),
		slog.String("investor_id", request.InvestorID),
		slog.String("amount", request.Amount.String()),
		slog.String("user_id", userID))
	return &request, nil
}

func (s *fundRequestService) GetFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string) (*domain.FundRequest, error) {
	req, err := s.requestRepo.FindFundRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Type != typ {
		return nil, fmt.Errorf("%w: %s request %s", apperrors.ErrNotFound, typ, requestID)
	}
	return req, nil
}

func (s *fundRequestService) ListFundRequests(ctx context.Context, typ domain.FundRequestType, params dto.ListFundRequestsParams) ([]domain.FundRequest, error) {
	requests, err := s.requestRepo.ListFundRequests(ctx, domain.FundRequestFilter{
		Type:       typ,
		Status:     params.Status,
		InvestorID: params.InvestorID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list fund requests", slog.String("type", string(typ)))
		return nil, err
	}
	return requests, nil
}

// ApproveFundRequest claims the request so a concurrent review cannot book it twice, then
// authors the ledger entry. A ledger failure releases the claim.
func (s *fundRequestService) ApproveFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, userID string) (*domain.FundRequest, error) {
	claimed, err := s.claim(ctx, typ, requestID, userID)
	if err != nil {
		return nil, err
	}
	logAttrs := []any{
		slog.String("request_id", requestID),
		slog.String("type", string(typ)),
		slog.String("investor_id", claimed.InvestorID),
		slog.String("user_id", userID),
	}

	txReq := dto.CreateTransactionRequest{Amount: claimed.Amount}
	if claimed.Notes != "" {
		notes := claimed.Notes
		txReq.Notes = &notes
	}
	author := s.ledgerSvc.Credit
	if typ.TransactionType() == domain.Debit {
		author = s.ledgerSvc.Debit
	}

	result, err := author(ctx, claimed.InvestorID, txReq, userID)
	if err != nil {
		s.LogWarn(ctx, err, "Fund request not booked", logAttrs...)
		if relErr := s.requestRepo.ReleaseFundRequest(context.WithoutCancel(ctx), requestID, userID, s.Now()); relErr != nil {
			s.LogError(ctx, relErr, "Failed to release fund request", logAttrs...)
		}
		return nil, fmt.Errorf("approve %s request %s: %w", typ, requestID, err)
	}

	txnID := result.Transaction.TransactionID
	approved, err := s.requestRepo.ResolveFundRequest(context.WithoutCancel(ctx), requestID, domain.FundRequestResolution{
		Status:        domain.FundRequestApproved,
		TransactionID: &txnID,
		ReviewedBy:    userID,
		ReviewedAt:    s.Now(),
	})
	if err != nil {
		// The ledger entry stands; the request stays processing until fixed by hand.
		s.LogError(ctx, err, "Booked fund request not marked approved",
			append(logAttrs, slog.String("transaction_id", txnID))...)
		return nil, fmt.Errorf("mark %s request %s approved: %w", typ, requestID, err)
	}

	s.LogInfo(ctx, "Fund request approved", append(logAttrs, slog.String("transaction_id", txnID))...)
	return approved, nil
}

func (s *fundRequestService) RejectFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, req dto.RejectFundRequestRequest, userID string) (*domain.FundRequest, error) {
	if _, err := s.claim(ctx, typ, requestID, userID); err != nil {
		return nil, err
	}

	var reason *string
	if req.Reason != "" {
		reason = &req.Reason
	}
	rejected, err := s.requestRepo.ResolveFundRequest(context.WithoutCancel(ctx), requestID, domain.FundRequestResolution{
		Status:          domain.FundRequestRejected,
		RejectionReason: reason,
		ReviewedBy:      userID,
		ReviewedAt:      s.Now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to reject fund request", slog.String("request_id", requestID))
		return nil, fmt.Errorf("reject %s request %s: %w", typ, requestID, err)
	}

	s.LogInfo(ctx, "Fund request rejected",
		slog.String("request_id", requestID),
		slog.String("type", string(typ)),
		slog.String("user_id", userID))
	return rejected, nil
}

// claim moves a pending request of typ to processing.
func (s *fundRequestService) claim(ctx context.Context, typ domain.FundRequestType, requestID string, userID string) (*domain.FundRequest, error) {
	if _, err := s.GetFundRequest(ctx, typ, requestID); err != nil {
		return nil, err
	}
	claimed, err := s.requestRepo.ClaimFundRequest(ctx, requestID, userID, s.Now())
	if err != nil {
		s.LogWarn(ctx, err, "Fund request not claimable", slog.String("request_id", requestID))
		return nil, err
	}
	return claimed, nil
}
