package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance holds the aggregates the ledger engine derives from a transaction list.
type Balance struct {
	CreditTotal decimal.Decimal `json:"creditTotal"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	NetBalance  decimal.Decimal `json:"netBalance"`
}

// ZeroBalance is the balance of an investor with no transactions.
func ZeroBalance() Balance {
	return Balance{CreditTotal: decimal.Zero, DebitTotal: decimal.Zero, NetBalance: decimal.Zero}
}

// StatementRow is one transaction as shown on a statement.
// Exactly one of CrAmount and DrAmount is non-zero.
type StatementRow struct {
	TransactionID   string          `json:"transactionID"`
	TransactionType TransactionType `json:"type"`
	Date            time.Time       `json:"date"`
	Notes           string          `json:"notes"`
	CrAmount        decimal.Decimal `json:"crAmount"`
	DrAmount        decimal.Decimal `json:"drAmount"`
}

// StatementLine is a StatementRow with display strings.
// CrDisplay/DrDisplay are empty on the side the row does not populate.
type StatementLine struct {
	StatementRow
	CrDisplay string `json:"crDisplay"`
	DrDisplay string `json:"drDisplay"`
}

// Statement is a display-ready projection of an investor's ledger.
type Statement struct {
	InvestorID          string          `json:"investorID"`
	Lines               []StatementLine `json:"lines"`
	TotalCredits        decimal.Decimal `json:"totalCredits"`
	TotalDebits         decimal.Decimal `json:"totalDebits"`
	NetBalance          decimal.Decimal `json:"netBalance"`
	TotalCreditsDisplay string          `json:"totalCreditsDisplay"`
	TotalDebitsDisplay  string          `json:"totalDebitsDisplay"`
	NetBalanceDisplay   string          `json:"netBalanceDisplay"`
	GeneratedAt         time.Time       `json:"generatedAt"`
}
