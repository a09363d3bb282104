package dto

import "github.com/SscSPs/investor_ledger/internal/core/domain"

// DashboardListParams bounds the dashboard widgets.
type DashboardListParams struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// RecentInvestmentResponse is a recent credit with its investor's name.
type RecentInvestmentResponse struct {
	TransactionResponse
	InvestorName string `json:"investorName"`
}

// ToRecentInvestmentResponses converts dashboard credits to their response DTOs.
func ToRecentInvestmentResponses(items []domain.RecentInvestment) []RecentInvestmentResponse {
	responses := make([]RecentInvestmentResponse, len(items))
	for i := range items {
		responses[i] = RecentInvestmentResponse{
			TransactionResponse: ToTransactionResponse(&items[i].Transaction),
			InvestorName:        items[i].InvestorName,
		}
	}
	return responses
}
