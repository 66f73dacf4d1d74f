package terminal

import (
	"context"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
)

// Snapshot copies the current state.
func (t *Terminal) Snapshot(ctx context.Context) (Snapshot, error) {
	return call(ctx, t, func() (Snapshot, error) {
		return Snapshot{
			OrderNo:    t.orderNo,
			Items:      t.cart.Items(),
			Totals:     t.cart.Totals(),
			MenuLoaded: !t.catalog.Empty(),
			Placing:    t.placing,
		}, nil
	})
}

// Menu returns the loaded catalog.
func (t *Terminal) Menu(ctx context.Context) (*menu.Catalog, error) {
	return call(ctx, t, func() (*menu.Catalog, error) {
		if t.catalog == nil {
			return nil, pos.NewFailedPrecondition(ErrMsgMenuNotLoaded)
		}
		return t.catalog, nil
	})
}

// editable rejects changes while an order is in flight.
func (t *Terminal) editable() error {
	if t.placing {
		return pos.NewFailedPrecondition(ErrMsgOrderInFlight)
	}
	return nil
}

func (t *Terminal) resolveToppings(choices []ToppingChoice) ([]menu.SelectedTopping, error) {
	selected := make([]menu.SelectedTopping, 0, len(choices))
	for _, c := range choices {
		top, ok := t.catalog.Topping(c.ToppingID)
		if !ok {
			return nil, pos.NewFailedPreconditionf(ErrMsgToppingNotOnMenu, c.ToppingID)
		}
		selected = append(selected, menu.SelectedTopping{Topping: top, Quantity: c.Quantity})
	}
	selection, err := menu.NewToppingSelection(selected)
	if err != nil {
		return nil, err
	}
	return selection.Items(), nil
}

// AddPizza adds a menu pizza. Repeated topping IDs are merged; an empty size
// selects menu.DefaultSize.
func (t *Terminal) AddPizza(ctx context.Context, itemID int, size menu.Size, toppings []ToppingChoice) (cart.LineItem, error) {
	return call(ctx, t, func() (cart.LineItem, error) {
		if err := t.editable(); err != nil {
			return cart.LineItem{}, err
		}
		if t.catalog == nil {
			return cart.LineItem{}, pos.NewFailedPrecondition(ErrMsgMenuNotLoaded)
		}
		pizza, ok := t.catalog.Pizza(itemID)
		if !ok {
			return cart.LineItem{}, pos.NewFailedPreconditionf(ErrMsgPizzaNotOnMenu, itemID)
		}
		selected, err := t.resolveToppings(toppings)
		if err != nil {
			return cart.LineItem{}, err
		}
		return t.cart.AddItem(pizza, size, selected)
	})
}

// AddBeverage adds a menu beverage.
func (t *Terminal) AddBeverage(ctx context.Context, itemID int) (cart.LineItem, error) {
	return call(ctx, t, func() (cart.LineItem, error) {
		if err := t.editable(); err != nil {
			return cart.LineItem{}, err
		}
		if t.catalog == nil {
			return cart.LineItem{}, pos.NewFailedPrecondition(ErrMsgMenuNotLoaded)
		}
		bev, ok := t.catalog.Beverage(itemID)
		if !ok {
			return cart.LineItem{}, pos.NewFailedPreconditionf(ErrMsgBeverageNotOnMenu, itemID)
		}
		return t.cart.AddBeverage(bev)
	})
}

// SetQuantity sets a line's quantity; n must be at least 1.
func (t *Terminal) SetQuantity(ctx context.Context, lineID string, n int) (cart.LineItem, error) {
	return t.edit(ctx, func() (cart.LineItem, error) { return t.cart.SetQuantity(lineID, n) })
}

// Increment adds one to a line.
func (t *Terminal) Increment(ctx context.Context, lineID string) (cart.LineItem, error) {
	return t.edit(ctx, func() (cart.LineItem, error) { return t.cart.Increment(lineID) })
}

// Decrement takes one off a line, stopping at 1.
func (t *Terminal) Decrement(ctx context.Context, lineID string) (cart.LineItem, error) {
	return t.edit(ctx, func() (cart.LineItem, error) { return t.cart.Decrement(lineID) })
}

func (t *Terminal) edit(ctx context.Context, fn func() (cart.LineItem, error)) (cart.LineItem, error) {
	return call(ctx, t, func() (cart.LineItem, error) {
		if err := t.editable(); err != nil {
			return cart.LineItem{}, err
		}
		return fn()
	})
}

// RemoveItem drops a line and reports whether it was there.
func (t *Terminal) RemoveItem(ctx context.Context, lineID string) (bool, error) {
	return call(ctx, t, func() (bool, error) {
		if err := t.editable(); err != nil {
			return false, err
		}
		return t.cart.RemoveItem(lineID), nil
	})
}

// Clear empties the cart.
func (t *Terminal) Clear(ctx context.Context) error {
	_, err := call(ctx, t, func() (struct{}, error) {
		if err := t.editable(); err != nil {
			return struct{}{}, err
		}
		t.cart.Clear()
		return struct{}{}, nil
	})
	return err
}

// Receipt formats the current cart under the current order number.
func (t *Terminal) Receipt(ctx context.Context) (string, error) {
	return call(ctx, t, func() (string, error) {
		return t.formatter.Format(receipt.NewOrder(t.orderNo, t.cart)), nil
	})
}
