// Package ledger derives investor balances and statements from the append-only transaction log
// and holds the admission rules for new credits and debits.
//
// Everything here is pure: functions take the transactions as explicit input, never read
// shared state, and may be called concurrently without coordination.
package ledger

import (
	"fmt"
	"sort"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalance sums credits and debits of a single investor's transactions.
// The result does not depend on the order of txns. An empty list yields a zero balance.
func ComputeBalance(txns []domain.Transaction) (domain.Balance, error) {
	if err := checkSingleInvestor(txns); err != nil {
		return domain.Balance{}, err
	}

	balance := domain.ZeroBalance()
	for _, txn := range txns {
		if !txn.TransactionType.IsValid() {
			return domain.Balance{}, unknownTypeError(txn)
		}
		balance = ApplyDelta(balance, txn)
	}
	return balance, nil
}

// LastSequence returns the highest insertion sequence in txns, or 0 for an empty ledger.
// It identifies how recent a balance derived from txns is.
func LastSequence(txns []domain.Transaction) int64 {
	var last int64
	for _, txn := range txns {
		if txn.Sequence > last {
			last = txn.Sequence
		}
	}
	return last
}

// ApplyDelta returns b updated with the effect of one more transaction.
// Used to bring cached aggregates forward after a confirmed write without a full recompute.
func ApplyDelta(b domain.Balance, txn domain.Transaction) domain.Balance {
	switch txn.TransactionType {
	case domain.Credit:
		b.CreditTotal = b.CreditTotal.Add(txn.Amount)
	case domain.Debit:
		b.DebitTotal = b.DebitTotal.Add(txn.Amount)
	}
	b.NetBalance = b.CreditTotal.Sub(b.DebitTotal)
	return b
}

// ProjectStatement orders txns chronologically and splits every amount into a credit or a
// debit column. The input slice is not modified.
func ProjectStatement(txns []domain.Transaction) ([]domain.StatementRow, error) {
	if err := checkSingleInvestor(txns); err != nil {
		return nil, err
	}

	ordered := Chronological(txns)
	rows := make([]domain.StatementRow, 0, len(ordered))
	for _, txn := range ordered {
		row := domain.StatementRow{
			TransactionID:   txn.TransactionID,
			TransactionType: txn.TransactionType,
			Date:            txn.Date,
			Notes:           txn.Notes,
			CrAmount:        decimal.Zero,
			DrAmount:        decimal.Zero,
		}
		switch txn.TransactionType {
		case domain.Credit:
			row.CrAmount = txn.Amount
		case domain.Debit:
			row.DrAmount = txn.Amount
		default:
			return nil, unknownTypeError(txn)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Chronological returns a copy of txns sorted by date ascending. Equal dates are ordered by
// insertion sequence, and equal sequences keep their input order.
func Chronological(txns []domain.Transaction) []domain.Transaction {
	ordered := make([]domain.Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].Sequence < ordered[j].Sequence
	})
	return ordered
}

func unknownTypeError(txn domain.Transaction) error {
	return fmt.Errorf("%w: transaction %s has unknown type %q", apperrors.ErrInvalidInput, txn.TransactionID, txn.TransactionType)
}

// checkSingleInvestor fails fast when the caller mixed transactions of different investors.
func checkSingleInvestor(txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	investorID := txns[0].InvestorID
	for _, txn := range txns[1:] {
		if txn.InvestorID != investorID {
			return fmt.Errorf("%w: transactions belong to investors %s and %s", apperrors.ErrInvalidInput, investorID, txn.InvestorID)
		}
	}
	return nil
}
