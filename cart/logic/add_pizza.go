package logic

import (
	"fmt"

	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// AddPizza prices a pizza at the given size with its toppings and appends it
// as a new line with quantity 1. Identical pizzas are never merged.
func (c *Cart) AddPizza(p *menu.Pizza, size menu.Size, toppings []menu.SelectedTopping) (LineItem, error) {
	if p == nil {
		return LineItem{}, pos.NewInvalidArgument(ErrMsgMenuItemRequired)
	}
	if !size.Valid() {
		return LineItem{}, pos.NewInvalidArgumentf(ErrMsgInvalidSize, string(size))
	}
	if err := pos.RequireAvailable(p.Available, fmt.Sprintf(ErrMsgItemUnavailable, p.Name)); err != nil {
		return LineItem{}, err
	}
	if err := menu.CheckToppings(toppings); err != nil {
		return LineItem{}, err
	}

	unit, err := c.pricing.PizzaUnitPrice(p, size, toppings)
	if err != nil {
		return LineItem{}, err
	}

	return c.append(&LineItem{
		ItemID:    p.ID,
		Name:      p.Name,
		Category:  menu.CategoryPizza,
		Size:      size,
		Toppings:  append([]menu.SelectedTopping(nil), toppings...),
		UnitPrice: unit,
	}), nil
}
