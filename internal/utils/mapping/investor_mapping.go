package mapping

import (
	"github.com/SscSPs/investor_ledger/internal/core/domain"
	"github.com/SscSPs/investor_ledger/internal/models"
)

// ToModelInvestor converts a domain Investor to a model Investor
func ToModelInvestor(d domain.Investor) models.Investor {
	return models.Investor{
		InvestorID:         d.InvestorID,
		Name:               d.Name,
		PhoneNumber:        d.PhoneNumber,
		Email:              d.Email,
		Address:            ToModelAddress(d.Address),
		BankDetails:        ToModelBankDetails(d.BankDetails),
		InvestmentPlanID:   d.InvestmentPlanID,
		YearlyPlanID:       d.YearlyPlanID,
		TotalMoneyInvested: d.TotalMoneyInvested,
		TotalReturns:       d.TotalReturns,
		Status:             string(d.Status),
		JoinDate:           d.JoinDate,
		IsDeleted:          d.IsDeleted,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestor converts a model Investor to a domain Investor
func ToDomainInvestor(m models.Investor) domain.Investor {
	return domain.Investor{
		InvestorID:         m.InvestorID,
		Name:               m.Name,
		PhoneNumber:        m.PhoneNumber,
		Email:              m.Email,
		Address:            ToDomainAddress(m.Address),
		BankDetails:        ToDomainBankDetails(m.BankDetails),
		InvestmentPlanID:   m.InvestmentPlanID,
		YearlyPlanID:       m.YearlyPlanID,
		TotalMoneyInvested: m.TotalMoneyInvested,
		TotalReturns:       m.TotalReturns,
		Status:             domain.InvestorStatus(m.Status),
		JoinDate:           m.JoinDate,
		IsDeleted:          m.IsDeleted,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelAddress(d *domain.Address) *models.Address {
	if d == nil {
		return nil
	}
	return &models.Address{Street: d.Street, City: d.City, State: d.State, Pincode: d.Pincode}
}

func ToDomainAddress(m *models.Address) *domain.Address {
	if m == nil {
		return nil
	}
	return &domain.Address{Street: m.Street, City: m.City, State: m.State, Pincode: m.Pincode}
}

func ToModelBankDetails(d *domain.BankDetails) *models.BankDetails {
	if d == nil {
		return nil
	}
	return &models.BankDetails{
		AccountNumber:     d.AccountNumber,
		IFSCCode:          d.IFSCCode,
		BankName:          d.BankName,
		AccountHolderName: d.AccountHolderName,
	}
}

func ToDomainBankDetails(m *models.BankDetails) *domain.BankDetails {
	if m == nil {
		return nil
	}
	return &domain.BankDetails{
		AccountNumber:     m.AccountNumber,
		IFSCCode:          m.IFSCCode,
		BankName:          m.BankName,
		AccountHolderName: m.AccountHolderName,
	}
}
