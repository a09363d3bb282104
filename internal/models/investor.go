package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is stored as JSONB.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// BankDetails is stored as JSONB.
type BankDetails struct {
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	BankName          string `json:"bankName"`
	AccountHolderName string `json:"accountHolderName"`
}

// Investor is one row of the investors table.
type Investor struct {
	InvestorID         string          `db:"investor_id"`
	Name               string          `db:"name"`
	PhoneNumber        string          `db:"phone_number"`
	Email              string          `db:"email"`
	Address            *Address        `db:"address"`
	BankDetails        *BankDetails    `db:"bank_details"`
	InvestmentPlanID   *string         `db:"investment_plan_id"`
	YearlyPlanID       *string         `db:"yearly_plan_id"`
	TotalMoneyInvested decimal.Decimal `db:"total_money_invested"`
	TotalReturns       decimal.Decimal `db:"total_returns"`
	Status             string          `db:"status"`
	JoinDate           time.Time       `db:"join_date"`
	IsDeleted          bool            `db:"is_deleted"`
	AuditFields
}
