package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestorStatus is the lifecycle status of an investor.
type InvestorStatus string

const (
	InvestorActive   InvestorStatus = "active"
	InvestorInactive InvestorStatus = "inactive"
)

// Address is an investor's postal address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// BankDetails holds the account investor withdrawals are paid into.
type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

// Investor is a participant of the platform whose money is tracked by the ledger.
// TotalMoneyInvested is a cache of the ledger net balance and is only written by ledger operations.
type Investor struct {
	InvestorID         string          `json:"investorID"`
	Name               string          `json:"name"`
	PhoneNumber        string          `json:"phoneNumber"`
	Email              string          `json:"email"`
	Address            *Address        `json:"address,omitempty"`
	BankDetails        *BankDetails    `json:"bankDetails,omitempty"`
	InvestmentPlanID   *string         `json:"investmentPlan,omitempty"`
	YearlyPlanID       *string         `json:"yearlyPlan,omitempty"`
	TotalMoneyInvested decimal.Decimal `json:"totalMoneyInvested"`
	TotalReturns       decimal.Decimal `json:"totalReturns"`
	Status             InvestorStatus  `json:"status"`
	JoinDate           time.Time       `json:"joinDate"`
	IsDeleted          bool            `json:"isDeleted"`
	AuditFields
}

// InvestorProfileUpdate carries the non-ledger fields an admin may edit.
// Nil fields are left untouched.
type InvestorProfileUpdate struct {
	Name             *string
	PhoneNumber      *string
	Email            *string
	Address          *Address
	BankDetails      *BankDetails
	InvestmentPlanID *string
	YearlyPlanID     *string
	Status           *InvestorStatus
	UpdatedBy        string
	UpdatedAt        time.Time
}

// InvestorStats summarises the investor base for the admin dashboard.
type InvestorStats struct {
	TotalInvestors     int     `json:"totalInvestors"`
	ActiveInvestors    int     `json:"activeInvestors"`
	ThisMonthInvestors int     `json:"thisMonthInvestors"`
	GrowthRate         float64 `json:"growthRate"` // percent
}
