// Package statement turns ledger output into a display-ready investor statement.
// It adds no business rules of its own; all figures come from the ledger package.
package statement

import (
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/core/ledger"
	"github.com/shopspring/decimal"
)

// Formatter renders an amount for display.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// Project builds the statement of one investor from its transaction log.
func Project(investorID string, txns []domain.Transaction, formatter Formatter, generatedAt time.Time) (*domain.Statement, error) {
	balance, err := ledger.ComputeBalance(txns)
	if err != nil {
		return nil, err
	}
	rows, err := ledger.ProjectStatement(txns)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.StatementLine, len(rows))
	for i, row := range rows {
		lines[i] = domain.StatementLine{StatementRow: row}
		switch row.TransactionType {
		case domain.Credit:
			lines[i].CrDisplay = formatter.Format(row.CrAmount)
		case domain.Debit:
			lines[i].DrDisplay = formatter.Format(row.DrAmount)
		}
	}

	return &domain.Statement{
		InvestorID:          investorID,
		Lines:               lines,
		TotalCredits:        balance.CreditTotal,
		TotalDebits:         balance.DebitTotal,
		NetBalance:          balance.NetBalance,
		TotalCreditsDisplay: formatter.Format(balance.CreditTotal),
		TotalDebitsDisplay:  formatter.Format(balance.DebitTotal),
		NetBalanceDisplay:   formatter.Format(balance.NetBalance),
		GeneratedAt:         generatedAt,
	}, nil
}
