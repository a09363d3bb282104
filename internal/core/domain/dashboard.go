package domain

import "github.com/shopspring/decimal"

// DashboardStats are the headline figures of the admin dashboard.
type DashboardStats struct {
	TotalInvestment         decimal.Decimal `json:"totalInvestment"`
	TotalInvestors          int             `json:"totalInvestors"`
	ActiveInvestors         int             `json:"activeInvestors"`
	PendingDeposits         int             `json:"pendingDeposits"`
	PendingDepositAmount    decimal.Decimal `json:"pendingDepositAmount"`
	PendingWithdrawals      int             `json:"pendingWithdrawals"`
	PendingWithdrawalAmount decimal.Decimal `json:"pendingWithdrawalAmount"`
}

// RecentInvestment is a credit shown on the dashboard with its investor's name.
type RecentInvestment struct {
	Transaction  Transaction `json:"transaction"`
	InvestorName string      `json:"investorName"`
}
