package utils

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyFormatter renders major-unit amounts as localized currency strings, e.g. 5000 INR -> "₹5,000.00".
type MoneyFormatter struct {
	currency *money.Currency
}

// NewMoneyFormatter returns a formatter for an ISO 4217 currency code known to go-money.
func NewMoneyFormatter(currencyCode string) (*MoneyFormatter, error) {
	cur := money.GetCurrency(currencyCode)
	if cur == nil {
		return nil, fmt.Errorf("unsupported display currency %q", currencyCode)
	}
	return &MoneyFormatter{currency: cur}, nil
}

// Format renders amount, rounding to the currency's minor unit.
func (f *MoneyFormatter) Format(amount decimal.Decimal) string {
	minor := amount.Shift(int32(f.currency.Fraction)).Round(0)
	return f.currency.Formatter().Format(minor.IntPart())
}

// CurrencyCode returns the ISO code the formatter renders.
func (f *MoneyFormatter) CurrencyCode() string {
	return f.currency.Code
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when no display currency is configured
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}
