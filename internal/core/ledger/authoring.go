package ledger

import (
	"fmt"

	"github.com/SscSPs/investor_ledger/internal/apperrors"
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	NotesInitialInvestment = "Initial investment amount"
	NotesCredit            = "Credit transaction"
	NotesWithdrawal        = "Withdrawal transaction"
)

// ValidateCredit admits a credit of amount.
func ValidateCredit(amount decimal.Decimal) error {
	return validateAmount(amount)
}

// ValidateDebit admits a debit of amount against the investor's current net balance.
// currentNet must be the authoritative balance at authorship time, read under the same
// lock or database transaction that will append the debit.
func ValidateDebit(amount, currentNet decimal.Decimal) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(currentNet) {
		return fmt.Errorf("%w: debit of %s exceeds net balance of %s", apperrors.ErrInsufficientBalance, amount.String(), currentNet.String())
	}
	return nil
}

// Validate dispatches to ValidateCredit or ValidateDebit depending on the transaction type.
func Validate(txType domain.TransactionType, amount, currentNet decimal.Decimal) error {
	switch txType {
	case domain.Credit:
		return ValidateCredit(amount)
	case domain.Debit:
		return ValidateDebit(amount, currentNet)
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txType)
	}
}

// DefaultNotes is the placeholder stored when a transaction is authored without notes.
func DefaultNotes(txType domain.TransactionType, initial bool) string {
	if txType == domain.Debit {
		return NotesWithdrawal
	}
	if initial {
		return NotesInitialInvestment
	}
	return NotesCredit
}

func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	if !amount.IsInteger() {
		return fmt.Errorf("%w: amount must be a whole number, got %s", apperrors.ErrInvalidAmount, amount.String())
	}
	return nil
}
