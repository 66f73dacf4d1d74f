// Package pricing computes what a line item costs: the base price for the
// chosen pizza size plus every topping surcharge.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// ErrMsgSizeNotPriced is returned under PolicyRejectMissing.
const ErrMsgSizeNotPriced = "%s is not priced for %s"

// Policy decides what happens when a pizza has no price for the chosen size.
type Policy int

const (
	// PolicyDefaultZero treats a missing size price as zero.
	PolicyDefaultZero Policy = iota
	// PolicyRejectMissing refuses to price a size that has no entry.
	PolicyRejectMissing
)

func (p Policy) String() string {
	switch p {
	case PolicyDefaultZero:
		return "default-zero"
	case PolicyRejectMissing:
		return "reject-missing"
	default:
		return "unknown"
	}
}

// UnitPrice is base + Σ(topping price × quantity).
func UnitPrice(base decimal.Decimal, toppings []menu.SelectedTopping) decimal.Decimal {
	total := base
	for _, t := range toppings {
		total = total.Add(t.Surcharge())
	}
	return total
}

// LineTotal is unit × quantity.
func LineTotal(unit decimal.Decimal, quantity int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// Calculator prices pizzas according to its Policy. The zero value uses
// PolicyDefaultZero.
type Calculator struct {
	Policy Policy
}

// NewCalculator creates a calculator. strict selects PolicyRejectMissing.
func NewCalculator(strict bool) Calculator {
	if strict {
		return Calculator{Policy: PolicyRejectMissing}
	}
	return Calculator{Policy: PolicyDefaultZero}
}

// BasePrice looks up the price of a size.
func (c Calculator) BasePrice(prices menu.PriceTable, size menu.Size) (decimal.Decimal, error) {
	return c.basePrice(prices, size, "this pizza")
}

func (c Calculator) basePrice(prices menu.PriceTable, size menu.Size, name string) (decimal.Decimal, error) {
	if price, ok := prices.Price(size); ok {
		return price, nil
	}
	if c.Policy == PolicyRejectMissing {
		return decimal.Zero, pos.NewInvalidArgumentf(ErrMsgSizeNotPriced, size.Title(), name)
	}
	return decimal.Zero, nil
}

// PizzaUnitPrice prices one pizza of the given size with its toppings.
func (c Calculator) PizzaUnitPrice(p *menu.Pizza, size menu.Size, toppings []menu.SelectedTopping) (decimal.Decimal, error) {
	base, err := c.basePrice(p.Prices, size, p.Name)
	if err != nil {
		return decimal.Zero, err
	}
	return UnitPrice(base, toppings), nil
}
