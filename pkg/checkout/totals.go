package checkout

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat rate applied to every order subtotal.
var DefaultTaxRate = decimal.New(8, -2)

// Totals is the full money breakdown derived from a cart subtotal.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Shipping   decimal.Decimal `json:"shipping"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// Calculator derives checkout totals. It holds configuration only, no
// mutable state; ComputeTotals is referentially transparent.
type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator builds a calculator for the given tax rate. Negative
// rates fall back to the default.
func NewCalculator(taxRate decimal.Decimal) Calculator {
	if taxRate.IsNegative() {
		taxRate = DefaultTaxRate
	}
	return Calculator{taxRate: taxRate}
}

// ComputeTotals applies tax exactly once over the subtotal. Shipping
// is free for every order.
func (c Calculator) ComputeTotals(subtotal decimal.Decimal) Totals {
	tax := subtotal.Mul(c.taxRate).Round(2)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Shipping:   decimal.Zero,
		GrandTotal: subtotal.Add(tax),
	}
}
