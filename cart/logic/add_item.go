package logic

import (
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// AddItem adds any menu item. Size and toppings only apply to pizzas; an
// empty size selects menu.DefaultSize.
func (c *Cart) AddItem(item menu.Item, size menu.Size, toppings []menu.SelectedTopping) (LineItem, error) {
	switch it := item.(type) {
	case *menu.Pizza:
		if size == "" {
			size = menu.DefaultSize
		}
		return c.AddPizza(it, size, toppings)
	case *menu.Beverage:
		if len(toppings) > 0 {
			return LineItem{}, pos.NewInvalidArgument(ErrMsgBeverageToppings)
		}
		return c.AddBeverage(it)
	case nil:
		return LineItem{}, pos.NewInvalidArgument(ErrMsgMenuItemRequired)
	default:
		return LineItem{}, pos.NewInvalidArgument(ErrMsgUnsupportedItem)
	}
}
