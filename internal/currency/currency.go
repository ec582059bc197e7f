// Package currency formats amounts for display.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Code is the currency every amount in Financogram is denominated in.
const Code = money.INR

// Format renders amount in the given ISO currency, e.g. "₹1,161,695.38".
// Amounts are rounded to the currency's minor unit. Unknown codes fall back
// to the plain decimal string.
func Format(amount decimal.Decimal, code string) string {
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// INR renders amount in rupees.
func INR(amount decimal.Decimal) string {
	return Format(amount, Code)
}

// INRFloat renders a float64 amount in rupees.
func INRFloat(amount float64) string {
	return INR(decimal.NewFromFloat(amount))
}
