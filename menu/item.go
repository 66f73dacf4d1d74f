// Package menu models what the shop sells: pizzas priced per size, beverages
// with a flat price, and the toppings a pizza can be customized with.
//
// Item is a closed variant. The only implementations are *Pizza and
// *Beverage, so category-specific rules live on the concrete types instead of
// being checked field by field.
package menu

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Category discriminates the Item variant on the wire.
type Category string

const (
	CategoryPizza    Category = "pizza"
	CategoryBeverage Category = "beverage"
)

// ParseCategory accepts the backend's category strings.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryPizza:
		return CategoryPizza, nil
	case CategoryBeverage:
		return CategoryBeverage, nil
	}
	return "", pos.NewInvalidArgumentf(ErrMsgUnknownCategory, s)
}

// Info is the part of a menu item common to every category.
type Info struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Description string    `json:"description"`
	Available   bool      `json:"is_available"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Item is either a *Pizza or a *Beverage.
type Item interface {
	Details() Info
	isItem()
}

// Pizza is sold in three sizes, each with its own base price.
type Pizza struct {
	Info
	Prices PriceTable `json:"prices"`
}

// Details returns the shared item fields.
func (p *Pizza) Details() Info { return p.Info }

func (p *Pizza) isItem() {}

// Beverage is sold at one flat price.
type Beverage struct {
	Info
	Price decimal.Decimal `json:"price"`
}

// Details returns the shared item fields.
func (b *Beverage) Details() Info { return b.Info }

func (b *Beverage) isItem() {}
