package logic

import "github.com/Fmfizzy/PizzaPOS/pos"

// SetQuantity sets a line's quantity directly. Quantities below 1 are
// rejected; use RemoveItem to take a line out.
func (c *Cart) SetQuantity(id string, n int) (LineItem, error) {
	i := c.index(id)
	if i < 0 {
		return LineItem{}, pos.NewFailedPrecondition(ErrMsgItemNotInCart)
	}
	if err := pos.RequirePositive(n, ErrMsgInvalidQuantity); err != nil {
		return LineItem{}, err
	}
	c.items[i].setQuantity(n)
	return c.items[i].clone(), nil
}

// Increment adds one to a line's quantity.
func (c *Cart) Increment(id string) (LineItem, error) {
	return c.adjust(id, 1)
}

// Decrement takes one off a line's quantity, stopping at 1.
func (c *Cart) Decrement(id string) (LineItem, error) {
	return c.adjust(id, -1)
}

func (c *Cart) adjust(id string, delta int) (LineItem, error) {
	i := c.index(id)
	if i < 0 {
		return LineItem{}, pos.NewFailedPrecondition(ErrMsgItemNotInCart)
	}
	li := c.items[i]
	li.setQuantity(max(1, li.Quantity+delta))
	return li.clone(), nil
}
