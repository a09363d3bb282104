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
	"github.com/shopspring/decimal"
)

const investorColumns = `investor_id, name, phone_number, email, address, bank_details, investment_plan_id, yearly_plan_id,
		total_money_invested, total_returns, status, join_date, is_deleted,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestorRepository struct {
	BaseRepository
}

// newPgxInvestorRepository creates a new repository for investor data.
func newPgxInvestorRepository(pool *pgxpool.Pool) portsrepo.InvestorRepositoryFacade {
	return &PgxInvestorRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestorRepositoryFacade = (*PgxInvestorRepository)(nil)

func scanInvestor(row pgx.Row) (models.Investor, error) {
	var m models.Investor
	err := row.Scan(
		&m.InvestorID,
		&m.Name,
		&m.PhoneNumber,
		&m.Email,
		&m.Address,
		&m.BankDetails,
		&m.InvestmentPlanID,
		&m.YearlyPlanID,
		&m.TotalMoneyInvested,
		&m.TotalReturns,
		&m.Status,
		&m.JoinDate,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	m := mapping.ToModelInvestor(investor)
	query := `
		INSERT INTO investors (` + investorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestorID,
		m.Name,
		m.PhoneNumber,
		m.Email,
		m.Address,
		m.BankDetails,
		m.InvestmentPlanID,
		m.YearlyPlanID,
		m.TotalMoneyInvested,
		m.TotalReturns,
		m.Status,
		m.JoinDate,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: investor with ID %s already exists", apperrors.ErrDuplicate, m.InvestorID)
		}
		return apperrors.NewAppError(500, "failed to insert investor "+m.InvestorID, err)
	}
	return nil
}

func (r *PgxInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investors WHERE investor_id = $1 AND is_deleted = FALSE;`

	m, err := scanInvestor(r.Pool.QueryRow(ctx, query, investorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
		}
		return nil, fmt.Errorf("failed to find investor by ID %s: %w", investorID, err)
	}
	investor := mapping.ToDomainInvestor(m)
	return &investor, nil
}

func (r *PgxInvestorRepository) ListInvestors(ctx context.Context, limit int, offset int) ([]domain.Investor, error) {
	query := `
		SELECT ` + investorColumns + `
		FROM investors
		WHERE is_deleted = FALSE
		ORDER BY join_date DESC, investor_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query investors: %w", err)
	}
	defer rows.Close()

	modelInvestors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Investor, error) {
		return scanInvestor(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan investors: %w", err)
	}

	investors := make([]domain.Investor, len(modelInvestors))
	for i, m := range modelInvestors {
		investors[i] = mapping.ToDomainInvestor(m)
	}
	return investors, nil
}

func (r *PgxInvestorRepository) CountInvestors(ctx context.Context, since time.Time) (portsrepo.InvestorCounts, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE join_date >= $1),
			COALESCE(SUM(total_money_invested), 0)
		FROM investors
		WHERE is_deleted = FALSE;
	`
	var counts portsrepo.InvestorCounts
	if err := r.Pool.QueryRow(ctx, query, since).Scan(&counts.Total, &counts.Active, &counts.JoinedSince, &counts.TotalInvested); err != nil {
		return portsrepo.InvestorCounts{}, fmt.Errorf("failed to count investors: %w", err)
	}
	return counts, nil
}

// UpdateInvestorProfile leaves columns untouched where the update field is nil.
func (r *PgxInvestorRepository) UpdateInvestorProfile(ctx context.Context, investorID string, upd domain.InvestorProfileUpdate) error {
	var status *string
	if upd.Status != nil {
		s := string(*upd.Status)
		status = &s
	}

	query := `
		UPDATE investors SET
			name               = COALESCE($2, name),
			phone_number       = COALESCE($3, phone_number),
			email              = COALESCE($4, email),
			address            = COALESCE($5, address),
			bank_details       = COALESCE($6, bank_details),
			investment_plan_id = COALESCE($7, investment_plan_id),
			yearly_plan_id     = COALESCE($8, yearly_plan_id),
			status             = COALESCE($9, status),
			last_updated_at    = $10,
			last_updated_by    = $11
		WHERE investor_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		investorID,
		upd.Name,
		upd.PhoneNumber,
		upd.Email,
		mapping.ToModelAddress(upd.Address),
		mapping.ToModelBankDetails(upd.BankDetails),
		upd.InvestmentPlanID,
		upd.YearlyPlanID,
		status,
		upd.UpdatedAt,
		upd.UpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update investor "+investorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	return nil
}

func (r *PgxInvestorRepository) SoftDeleteInvestor(ctx context.Context, investorID string, userID string, at time.Time) error {
	query := `
		UPDATE investors
		SET is_deleted = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE investor_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, investorID, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete investor "+investorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	return nil
}

func (r *PgxInvestorRepository) SetTotalMoneyInvested(ctx context.Context, investorID string, amount decimal.Decimal, userID string, at time.Time) error {
	return setTotalMoneyInvested(ctx, r.Pool, investorID, amount, userID, at)
}

// setTotalMoneyInvested is shared with the append path, which runs it inside its own transaction.
func setTotalMoneyInvested(ctx context.Context, q querier, investorID string, amount decimal.Decimal, userID string, at time.Time) error {
	query := `
		UPDATE investors
		SET total_money_invested = $2, last_updated_at = $3, last_updated_by = $4
		WHERE investor_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := q.Exec(ctx, query, investorID, amount, at, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invested total for investor "+investorID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, investorID)
	}
	return nil
}
