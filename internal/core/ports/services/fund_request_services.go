package services

import (
	"context"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/dto"
)

// FundRequestReaderSvc defines read operations on deposit and withdrawal queues
type FundRequestReaderSvc interface {
	// GetFundRequest returns apperrors.ErrNotFound when the request is of another type.
	GetFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string) (*domain.FundRequest, error)

	// ListFundRequests lists the requests of one type, newest first.
	ListFundRequests(ctx context.Context, typ domain.FundRequestType, params dto.ListFundRequestsParams) ([]domain.FundRequest, error)
}

// FundRequestWriterSvc defines the review operations. Only approval touches the ledger.
type FundRequestWriterSvc interface {
	// CreateFundRequest queues a pending request for an existing investor.
	CreateFundRequest(ctx context.Context, typ domain.FundRequestType, req dto.CreateFundRequestRequest, userID string) (*domain.FundRequest, error)

	// ApproveFundRequest books the request through the ledger and marks it approved.
	// If the ledger rejects it, e.g. with apperrors.ErrInsufficientBalance, the request stays pending.
	ApproveFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, userID string) (*domain.FundRequest, error)

	// RejectFundRequest closes a pending request without a ledger effect.
	RejectFundRequest(ctx context.Context, typ domain.FundRequestType, requestID string, req dto.RejectFundRequestRequest, userID string) (*domain.FundRequest, error)
}

// FundRequestSvcFacade combines all fund request service interfaces
type FundRequestSvcFacade interface {
	FundRequestReaderSvc
	FundRequestWriterSvc
}
