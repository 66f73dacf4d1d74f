package menu

import (
	"strings"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Validate checks an item before it is sent to the backend: a name is
// required, a beverage needs a non-negative price, and a pizza needs a
// non-negative price for every size.
func Validate(item Item) error {
	if err := pos.RequireNotEmpty(strings.TrimSpace(item.Details().Name), ErrMsgNameRequired); err != nil {
		return err
	}

	switch it := item.(type) {
	case *Beverage:
		if err := pos.RequireNonNegativeAmount(it.Price, ErrMsgNegativePrice); err != nil {
			return err
		}
	case *Pizza:
		if missing := it.Prices.Missing(); len(missing) > 0 {
			return pos.NewInvalidArgumentf(ErrMsgSizePriceRequired, missing[0].Title())
		}
		for _, size := range Sizes {
			if err := pos.RequireNonNegativeAmount(it.Prices[size], ErrMsgNegativePrice); err != nil {
				return err
			}
		}
	default:
		return pos.NewInvalidArgument(ErrMsgUnsupportedMenuVariant)
	}
	return nil
}
