package terminal

import (
	"context"

	"github.com/shopspring/decimal"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
	"github.com/Fmfizzy/PizzaPOS/pricing"
)

// Draft is a pizza being customized. It belongs to whoever holds it and is
// never seen by the cart until committed, so dropping a draft has no effect.
type Draft struct {
	Pizza    *menu.Pizza
	size     menu.Size
	toppings *menu.ToppingSelection
}

// NewDraft starts customizing p at menu.DefaultSize with no toppings.
func NewDraft(p *menu.Pizza) *Draft {
	sel, _ := menu.NewToppingSelection(nil)
	return &Draft{Pizza: p, size: menu.DefaultSize, toppings: sel}
}

// Size is the selected size.
func (d *Draft) Size() menu.Size {
	return d.size
}

// SetSize changes the size.
func (d *Draft) SetSize(size menu.Size) error {
	if !size.Valid() {
		return pos.NewInvalidArgumentf(menu.ErrMsgUnknownSize, string(size))
	}
	d.size = size
	return nil
}

// AddTopping adds one portion and returns the new count.
func (d *Draft) AddTopping(t menu.Topping) (int, error) {
	if !t.Available {
		return d.toppings.Quantity(t.ID), pos.NewFailedPreconditionf(menu.ErrMsgToppingUnavailable, t.Name)
	}
	return d.toppings.Add(t), nil
}

// RemoveTopping takes one portion off.
func (d *Draft) RemoveTopping(id int) {
	d.toppings.RemoveOne(id)
}

// Toppings is the current selection.
func (d *Draft) Toppings() []menu.SelectedTopping {
	return d.toppings.Items()
}

// Choices converts the selection for AddPizza.
func (d *Draft) Choices() []ToppingChoice {
	items := d.toppings.Items()
	out := make([]ToppingChoice, len(items))
	for i, t := range items {
		out[i] = ToppingChoice{ToppingID: t.ID, Quantity: t.Quantity}
	}
	return out
}

// UnitPrice previews what one of this pizza would cost.
func (d *Draft) UnitPrice(calc pricing.Calculator) (decimal.Decimal, error) {
	return calc.PizzaUnitPrice(d.Pizza, d.size, d.toppings.Items())
}

// NewDraft starts a draft for a pizza on the loaded menu.
func (t *Terminal) NewDraft(ctx context.Context, pizzaID int) (*Draft, error) {
	return call(ctx, t, func() (*Draft, error) {
		if t.catalog == nil {
			return nil, pos.NewFailedPrecondition(ErrMsgMenuNotLoaded)
		}
		p, ok := t.catalog.Pizza(pizzaID)
		if !ok {
			return nil, pos.NewFailedPreconditionf(ErrMsgPizzaNotOnMenu, pizzaID)
		}
		return NewDraft(p), nil
	})
}

// Commit adds a draft to the cart.
func (t *Terminal) Commit(ctx context.Context, d *Draft) (cart.LineItem, error) {
	return t.AddPizza(ctx, d.Pizza.ID, d.size, d.Choices())
}
