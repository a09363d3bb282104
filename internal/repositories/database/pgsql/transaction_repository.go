package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/investor_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/investor_ledger/internal/models"
	"github.com/SscSPs/investor_ledger/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) ListTransactionsByInvestor(ctx context.Context, investorID string) ([]domain.Transaction, error) {
	return listTransactions(ctx, r.Pool, investorID)
}

func (r *PgxTransactionRepository) ListRecentTransactions(ctx context.Context, txType domain.TransactionType, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT t.transaction_id, t.sequence, t.investor_id, t.transaction_type, t.amount, t.notes, t.transaction_date, t.created_at, t.created_by
		FROM transactions t
		JOIN investors i ON i.investor_id = t.investor_id AND i.is_deleted = FALSE
		WHERE t.transaction_type = $1
		ORDER BY t.sequence DESC
		LIMIT $2;
	`
	var lim *int
	if limit > 0 {
		lim = &limit
	}
	rows, err := r.Pool.Query(ctx, query, string(txType), lim)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent %s transactions: %w", txType, err)
	}
	return collectTransactions(rows)
}

func listTransactions(ctx context.Context, q querier, investorID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, sequence, investor_id, transaction_type, amount, notes, transaction_date, created_at, created_by
		FROM transactions
		WHERE investor_id = $1
		ORDER BY sequence;
	`
	rows, err := q.Query(ctx, query, investorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for investor %s: %w", investorID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, fmt.Errorf("investor %s: %w", investorID, err)
	}
	return txns, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Sequence,
			&txn.InvestorID,
			&txn.TransactionType,
			&txn.Amount,
			&txn.Notes,
			&txn.TransactionDate,
			&txn.CreatedAt,
			&txn.CreatedBy,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}
	return mapping.ToDomainTransactions(modelTxns), nil
}

// AppendTransaction locks the investor row, recomputes the balance from the log inside the same
// database transaction and inserts only if admit accepts it. Concurrent appends for one investor
// queue on the row lock, across every process sharing the database.
func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, newTxn domain.NewTransaction, admit portsrepo.AdmitFunc) (*domain.AppendResult, error) {
	var result *domain.AppendResult
	err := withTx(ctx, r, func(tx pgx.Tx) error {
		var err error
		result, err = appendLocked(ctx, tx, newTxn, admit)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func appendLocked(ctx context.Context, tx pgx.Tx, newTxn domain.NewTransaction, admit portsrepo.AdmitFunc) (*domain.AppendResult, error) {
	var lockedID string
	err := tx.QueryRow(ctx,
		`SELECT investor_id FROM investors WHERE investor_id = $1 AND is_deleted = FALSE FOR UPDATE;`,
		newTxn.InvestorID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: investor %s", apperrors.ErrNotFound, newTxn.InvestorID)
		}
		return nil, apperrors.NewAppError(500, "failed to lock investor "+newTxn.InvestorID, err)
	}

	existing, err := listTransactions(ctx, tx, newTxn.InvestorID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load ledger", err)
	}
	current, err := ledger.ComputeBalance(existing)
	if err != nil {
		return nil, err
	}
	if admit != nil {
		if err := admit(current); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	m := models.Transaction{
		TransactionID:   uuid.NewString(),
		InvestorID:      newTxn.InvestorID,
		TransactionType: models.TransactionType(newTxn.TransactionType),
		Amount:          newTxn.Amount,
		Notes:           newTxn.Notes,
		TransactionDate: now,
		CreatedAt:       now,
		CreatedBy:       newTxn.CreatedBy,
	}
	insert := `
		INSERT INTO transactions (transaction_id, investor_id, transaction_type, amount, notes, transaction_date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING sequence;
	`
	err = tx.QueryRow(ctx, insert,
		m.TransactionID,
		m.InvestorID,
		m.TransactionType,
		m.Amount,
		m.Notes,
		m.TransactionDate,
		m.CreatedAt,
		m.CreatedBy,
	).Scan(&m.Sequence)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	balance := ledger.ApplyDelta(current, txn)

	if err := setTotalMoneyInvested(ctx, tx, newTxn.InvestorID, balance.NetBalance, newTxn.CreatedBy, now); err != nil {
		return nil, err
	}

	return &domain.AppendResult{Transaction: txn, Balance: balance}, nil
}
