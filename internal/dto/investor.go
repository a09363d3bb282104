package dto

import (
	"time"

	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestorRequest defines the data needed to register an investor.
// InitialInvestment, when present, is booked as the investor's first credit.
type CreateInvestorRequest struct {
	Name              string                `json:"name" binding:"required"`
	PhoneNumber       string                `json:"phoneNumber" binding:"required"`
	Email             string                `json:"email" binding:"omitempty,email"`
	Address           *domain.Address       `json:"address"`
	BankDetails       *domain.BankDetails   `json:"bankDetails"`
	InvestmentPlanID  *string               `json:"investmentPlan"`
	YearlyPlanID      *string               `json:"yearlyPlan"`
	Status            domain.InvestorStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	InitialInvestment *decimal.Decimal      `json:"initialInvestment" binding:"omitempty,txamount"`
}

// UpdateInvestorRequest defines the profile fields an admin may edit.
// The invested total is not editable here; it is derived from the ledger.
type UpdateInvestorRequest struct {
	Name             *string                `json:"name" binding:"omitempty,min=1"`
	PhoneNumber      *string                `json:"phoneNumber" binding:"omitempty,min=1"`
	Email            *string                `json:"email" binding:"omitempty,email"`
	Address          *domain.Address        `json:"address"`
	BankDetails      *domain.BankDetails    `json:"bankDetails"`
	InvestmentPlanID *string                `json:"investmentPlan"`
	YearlyPlanID     *string                `json:"yearlyPlan"`
	Status           *domain.InvestorStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListInvestorsParams defines query parameters for listing investors.
type ListInvestorsParams struct {
	Limit  int `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// InvestorResponse defines the data returned for an investor.
type InvestorResponse struct {
	InvestorID         string                `json:"investorID"`
	Name               string                `json:"name"`
	PhoneNumber        string                `json:"phoneNumber"`
	Email              string                `json:"email"`
	Address            *domain.Address       `json:"address,omitempty"`
	BankDetails        *domain.BankDetails   `json:"bankDetails,omitempty"`
	InvestmentPlanID   *string               `json:"investmentPlan,omitempty"`
	YearlyPlanID       *string               `json:"yearlyPlan,omitempty"`
	TotalMoneyInvested decimal.Decimal       `json:"totalMoneyInvested"`
	TotalReturns       decimal.Decimal       `json:"totalReturns"`
	Status             domain.InvestorStatus `json:"status"`
	JoinDate           time.Time             `json:"joinDate"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy      string                `json:"lastUpdatedBy"`
	Transactions       []TransactionResponse `json:"transactions,omitempty"`
}

// CreateInvestorResponse wraps a created investor; Warning is set when the investor exists
// but its initial investment could not be credited.
type CreateInvestorResponse struct {
	Investor InvestorResponse `json:"investor"`
	Warning  string           `json:"warning,omitempty"`
}

// ListInvestorsResponse wraps the list of investors.
type ListInvestorsResponse struct {
	Investors []InvestorResponse `json:"investors"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// ToInvestorResponse converts a domain.Investor to InvestorResponse DTO
func ToInvestorResponse(inv *domain.Investor) InvestorResponse {
	return InvestorResponse{
		InvestorID:         inv.InvestorID,
		Name:               inv.Name,
		PhoneNumber:        inv.PhoneNumber,
		Email:              inv.Email,
		Address:            inv.Address,
		BankDetails:        inv.BankDetails,
		InvestmentPlanID:   inv.InvestmentPlanID,
		YearlyPlanID:       inv.YearlyPlanID,
		TotalMoneyInvested: inv.TotalMoneyInvested,
		TotalReturns:       inv.TotalReturns,
		Status:             inv.Status,
		JoinDate:           inv.JoinDate,
		CreatedAt:          inv.CreatedAt,
		CreatedBy:          inv.CreatedBy,
		LastUpdatedAt:      inv.LastUpdatedAt,
		LastUpdatedBy:      inv.LastUpdatedBy,
	}
}

// ToListInvestorsResponse converts a slice of domain.Investor to ListInvestorsResponse DTO
func ToListInvestorsResponse(investors []domain.Investor, params ListInvestorsParams) ListInvestorsResponse {
	responses := make([]InvestorResponse, len(investors))
	for i := range investors {
		responses[i] = ToInvestorResponse(&investors[i])
	}
	return ListInvestorsResponse{
		Investors: responses,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}
}

// ToProfileUpdate converts an UpdateInvestorRequest to the domain update.
func (r UpdateInvestorRequest) ToProfileUpdate(userID string, at time.Time) domain.InvestorProfileUpdate {
	return domain.InvestorProfileUpdate{
		Name:             r.Name,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		Address:          r.Address,
		BankDetails:      r.BankDetails,
		InvestmentPlanID: r.InvestmentPlanID,
		YearlyPlanID:     r.YearlyPlanID,
		Status:           r.Status,
		UpdatedBy:        userID,
		UpdatedAt:        at,
	}
}
