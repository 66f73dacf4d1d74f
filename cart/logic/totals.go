package logic

import "github.com/shopspring/decimal"

// TaxRate is applied to the subtotal.
var TaxRate = decimal.RequireFromString("0.05")

// Totals are the three figures printed under the line items.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// ComputeTotals derives totals from line items.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.TotalPrice)
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax),
	}
}

// Totals recomputes the cart totals.
func (c *Cart) Totals() Totals {
	return ComputeTotals(c.Items())
}
