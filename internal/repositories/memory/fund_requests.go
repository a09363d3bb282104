package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) SaveFundRequest(ctx context.Context, req domain.FundRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.requests[req.RequestID]; exists {
		return fmt.Errorf("%w: fund request %s", apperrors.ErrDuplicate, req.RequestID)
	}
	s.requests[req.RequestID] = cloneFundRequest(req)
	return nil
}

func (s *Store) FindFundRequestByID(ctx context.Context, requestID string) (*domain.FundRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[requestID]
	if !ok {
		return nil, fmt.Errorf("%w: fund request %s", apperrors.ErrNotFound, requestID)
	}
	out := cloneFundRequest(req)
	return &out, nil
}

func (s *Store) ListFundRequests(ctx context.Context, filter domain.FundRequestFilter) ([]domain.FundRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var all []domain.FundRequest
	for _, req := range s.requests {
		if filter.Type != "" && req.Type != filter.Type {
			continue
		}
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.InvestorID != "" && req.InvestorID != filter.InvestorID {
			continue
		}
		all = append(all, cloneFundRequest(req))
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].RequestID < all[j].RequestID
	})

	if filter.Offset >= len(all) {
		return []domain.FundRequest{}, nil
	}
	end := filter.Offset + filter.Limit
	if filter.Limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[filter.Offset:end], nil
}

func (s *Store) SumPendingFundRequests(ctx context.Context) ([]domain.PendingFundRequestTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byType := make(map[domain.FundRequestType]*domain.PendingFundRequestTotal)
	for _, req := range s.requests {
		if req.Status != domain.FundRequestPending {
			continue
		}
		total, ok := byType[req.Type]
		if !ok {
			total = &domain.PendingFundRequestTotal{Type: req.Type, Amount: decimal.Zero}
			byType[req.Type] = total
		}
		total.Count++
		total.Amount = total.Amount.Add(req.Amount)
	}

	out := make([]domain.PendingFundRequestTotal, 0, len(byType))
	for _, total := range byType {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}

func (s *Store) ClaimFundRequest(ctx context.Context, requestID string, userID string, at time.Time) (*domain.FundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.transition(requestID, domain.FundRequestPending, domain.FundRequestProcessing, userID, at)
	if err != nil {
		return nil, err
	}
	out := cloneFundRequest(req)
	return &out, nil
}

func (s *Store) ReleaseFundRequest(ctx context.Context, requestID string, userID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.transition(requestID, domain.FundRequestProcessing, domain.FundRequestPending, userID, at)
	return err
}

func (s *Store) ResolveFundRequest(ctx context.Context, requestID string, res domain.FundRequestResolution) (*domain.FundRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !res.Status.IsFinal() {
		return nil, fmt.Errorf("%w: %q is not a final status", apperrors.ErrInvalidInput, res.Status)
	}
	req, err := s.transition(requestID, domain.FundRequestProcessing, res.Status, res.ReviewedBy, res.ReviewedAt)
	if err != nil {
		return nil, err
	}
	req.TransactionID = res.TransactionID
	req.RejectionReason = res.RejectionReason
	req.ReviewedBy = stringPtr(res.ReviewedBy)
	reviewedAt := res.ReviewedAt
	req.ReviewedAt = &reviewedAt
	s.requests[requestID] = req

	out := cloneFundRequest(req)
	return &out, nil
}

// transition must be called with s.mu held.
func (s *Store) transition(requestID string, from, to domain.FundRequestStatus, userID string, at time.Time) (domain.FundRequest, error) {
	req, ok := s.requests[requestID]
	if !ok {
		return domain.FundRequest{}, fmt.Errorf("%w: fund request %s", apperrors.ErrNotFound, requestID)
	}
	if req.Status != from {
		return domain.FundRequest{}, fmt.Errorf("%w: fund request %s is %s", apperrors.ErrConflict, requestID, req.Status)
	}
	req.Status = to
	req.LastUpdatedAt = at
	req.LastUpdatedBy = userID
	s.requests[requestID] = req
	return req, nil
}

func cloneFundRequest(req domain.FundRequest) domain.FundRequest {
	if req.TransactionID != nil {
		req.TransactionID = stringPtr(*req.TransactionID)
	}
	if req.RejectionReason != nil {
		req.RejectionReason = stringPtr(*req.RejectionReason)
	}
	if req.ReviewedBy != nil {
		req.ReviewedBy = stringPtr(*req.ReviewedBy)
	}
	if req.ReviewedAt != nil {
		at := *req.ReviewedAt
		req.ReviewedAt = &at
	}
	return req
}
