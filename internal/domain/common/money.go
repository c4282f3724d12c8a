package common

import "github.com/shopspring/decimal"

// Amounts are persisted as plain numbers (the storefront documents store
// float prices) but every sum goes through decimal so that sub-order
// totals add up to the order total exactly.

func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

func ToAmount(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
