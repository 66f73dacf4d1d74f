package logic

import (
	"fmt"

	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// AddBeverage appends a beverage at its flat price.
func (c *Cart) AddBeverage(b *menu.Beverage) (LineItem, error) {
	if b == nil {
		return LineItem{}, pos.NewInvalidArgument(ErrMsgMenuItemRequired)
	}
	if err := pos.RequireAvailable(b.Available, fmt.Sprintf(ErrMsgItemUnavailable, b.Name)); err != nil {
		return LineItem{}, err
	}
	if err := pos.RequireNonNegativeAmount(b.Price, ErrMsgBeveragePriceNeg); err != nil {
		return LineItem{}, err
	}

	return c.append(&LineItem{
		ItemID:    b.ID,
		Name:      b.Name,
		Category:  menu.CategoryBeverage,
		UnitPrice: b.Price,
	}), nil
}
