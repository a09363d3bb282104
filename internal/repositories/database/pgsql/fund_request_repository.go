package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/investor_ledger/internal/models"
	"github.com/SscSPs/investor_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fundRequestColumns = `request_id, investor_id, request_type, amount, notes, status,
		transaction_id, rejection_reason, reviewed_by, reviewed_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxFundRequestRepository struct {
	BaseRepository
}

// newPgxFundRequestRepository creates a new repository for deposit and withdrawal requests.
func newPgxFundRequestRepository(pool *pgxpool.Pool) portsrepo.FundRequestRepositoryFacade {
	return &PgxFundRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FundRequestRepositoryFacade = (*PgxFundRequestRepository)(nil)

func scanFundRequest(row pgx.Row) (models.FundRequest, error) {
	var m models.FundRequest
	err := row.Scan(
		&m.RequestID,
		&m.InvestorID,
		&m.RequestType,
		&m.Amount,
		&m.Notes,
		&m.Status,
		&m.TransactionID,
		&m.RejectionReason,
		&m.ReviewedBy,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxFundRequestRepository) SaveFundRequest(ctx context.Context, req domain.FundRequest) error {
	m := mapping.ToModelFundRequest(req)
	query := `
		INSERT INTO fund_requests (` + fundRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.InvestorID,
		m.RequestType,
		m.Amount,
		m.Notes,
		m.Status,
		m.TransactionID,
		m.RejectionReason,
		m.ReviewedBy,
		m.ReviewedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: fund request %s", apperrors.ErrDuplicate, req.RequestID)
		}
		return fmt.Errorf("failed to save fund request %s: %w", req.RequestID, err)
	}
	return nil
}

func (r *PgxFundRequestRepository) FindFundRequestByID(ctx context.Context, requestID string) (*domain.FundRequest, error) {
	return findFundRequest(ctx, r.Pool, requestID, false)
}

func findFundRequest(ctx context.Context, q querier, requestID string, forUpdate bool) (*domain.FundRequest, error) {
	query := `SELECT ` + fundRequestColumns + ` FROM fund_requests WHERE request_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	m, err := scanFundRequest(q.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: fund request %s", apperrors.ErrNotFound, requestID)
		}
		return nil, fmt.Errorf("failed to find fund request %s: %w", requestID, err)
	}
	req := mapping.ToDomainFundRequest(m)
	return &req, nil
}

func (r *PgxFundRequestRepository) ListFundRequests(ctx context.Context, filter domain.FundRequestFilter) ([]domain.FundRequest, error) {
	// NULL parameters disable their filter; LIMIT NULL returns every row.
	query := `
		SELECT ` + fundRequestColumns + `
		FROM fund_requests
		WHERE ($1::text IS NULL OR request_type = $1)
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::text IS NULL OR investor_id = $3)
		ORDER BY created_at DESC, request_id
		LIMIT $4 OFFSET $5;
	`
	var limit *int
	if filter.Limit > 0 {
		limit = &filter.Limit
	}
	rows, err := r.Pool.Query(ctx, query,
		nullable(string(filter.Type)),
		nullable(string(filter.Status)),
		nullable(filter.InvestorID),
		limit,
		filter.Offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund requests: %w", err)
	}
	defer rows.Close()

	modelRequests, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FundRequest, error) {
		return scanFundRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan fund requests: %w", err)
	}

	requests := make([]domain.FundRequest, len(modelRequests))
	for i, m := range modelRequests {
		requests[i] = mapping.ToDomainFundRequest(m)
	}
	return requests, nil
}

func (r *PgxFundRequestRepository) SumPendingFundRequests(ctx context.Context) ([]domain.PendingFundRequestTotal, error) {
	query := `
		SELECT request_type, COUNT(*), COALESCE(SUM(amount), 0)
		FROM fund_requests
		WHERE status = 'pending'
		GROUP BY request_type
		ORDER BY request_type;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending fund requests: %w", err)
	}
	defer rows.Close()

	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PendingFundRequestTotal, error) {
		var t domain.PendingFundRequestTotal
		err := row.Scan(&t.Type, &t.Count, &t.Amount)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending fund request totals: %w", err)
	}
	return totals, nil
}

func (r *PgxFundRequestRepository) ClaimFundRequest(ctx context.Context, requestID string, userID string, at time.Time) (*domain.FundRequest, error) {
	return r.transition(ctx, requestID, domain.FundRequestPending, domain.FundRequestResolution{
		Status:     domain.FundRequestProcessing,
		ReviewedBy: userID,
		ReviewedAt: at,
	})
}

func (r *PgxFundRequestRepository) ReleaseFundRequest(ctx context.Context, requestID string, userID string, at time.Time) error {
	_, err := r.transition(ctx, requestID, domain.FundRequestProcessing, domain.FundRequestResolution{
		Status:     domain.FundRequestPending,
		ReviewedBy: userID,
		ReviewedAt: at,
	})
	return err
}

func (r *PgxFundRequestRepository) ResolveFundRequest(ctx context.Context, requestID string, res domain.FundRequestResolution) (*domain.FundRequest, error) {
	if !res.Status.IsFinal() {
		return nil, fmt.Errorf("%w: %q is not a final status", apperrors.ErrInvalidInput, res.Status)
	}
	return r.transition(ctx, requestID, domain.FundRequestProcessing, res)
}

// transition locks the request row, checks it is still in from and applies res.
// Review columns are only written for final statuses.
func (r *PgxFundRequestRepository) transition(ctx context.Context, requestID string, from domain.FundRequestStatus, res domain.FundRequestResolution) (*domain.FundRequest, error) {
	var updated *domain.FundRequest
	err := withTx(ctx, r, func(tx pgx.Tx) error {
		current, err := findFundRequest(ctx, tx, requestID, true)
		if err != nil {
			return err
		}
		if current.Status != from {
			return fmt.Errorf("%w: fund request %s is %s", apperrors.ErrConflict, requestID, current.Status)
		}

		final := res.Status.IsFinal()
		query := `
			UPDATE fund_requests SET
				status           = $2,
				transaction_id   = CASE WHEN $3 THEN $4 ELSE transaction_id END,
				rejection_reason = CASE WHEN $3 THEN $5 ELSE rejection_reason END,
				reviewed_by      = CASE WHEN $3 THEN $6 ELSE reviewed_by END,
				reviewed_at      = CASE WHEN $3 THEN $7 ELSE reviewed_at END,
				last_updated_at  = $7,
				last_updated_by  = $6
			WHERE request_id = $1
			RETURNING ` + fundRequestColumns + `;
		`
		m, err := scanFundRequest(tx.QueryRow(ctx, query,
			requestID,
			string(res.Status),
			final,
			res.TransactionID,
			res.RejectionReason,
			res.ReviewedBy,
			res.ReviewedAt,
		))
		if err != nil {
			return apperrors.NewAppError(500, "failed to update fund request "+requestID, err)
		}
		req := mapping.ToDomainFundRequest(m)
		updated = &req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
