// Package dashboard computes sales performance figures for employees,
// branches and the whole company from already fetched rows. Nothing in
// this package performs I/O.
package dashboard

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SafePercent returns numerator/denominator*100 with exactly one decimal
// place, or "0.0" when the denominator is zero or negative.
func SafePercent(numerator, denominator decimal.Decimal) string {
	if !denominator.IsPositive() {
		return "0.0"
	}
	return numerator.Mul(hundred).Div(denominator).StringFixed(1)
}

// sum adds amounts in order.
func sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
