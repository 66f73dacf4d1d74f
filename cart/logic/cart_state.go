// Package logic is the order cart: line items, quantities, totals and the
// payload sent when an order is placed.
package logic

import (
	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
	"github.com/Fmfizzy/PizzaPOS/pricing"
)

// LineItem is one entry in the cart.
type LineItem struct {
	ID         string
	ItemID     int
	Name       string
	Category   menu.Category
	Size       menu.Size // empty for beverages
	Toppings   []menu.SelectedTopping
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

func (li *LineItem) setQuantity(n int) {
	li.Quantity = n
	li.TotalPrice = pricing.LineTotal(li.UnitPrice, n)
}

func (li *LineItem) clone() LineItem {
	c := *li
	if li.Toppings != nil {
		c.Toppings = append([]menu.SelectedTopping(nil), li.Toppings...)
	}
	return c
}

// Cart is the order being built. It is not safe for concurrent use; the
// terminal confines it to one goroutine.
type Cart struct {
	pricing pricing.Calculator
	items   []*LineItem
	issued  map[string]struct{}
	newID   func() string
}

// Option configures a Cart.
type Option func(*Cart)

// WithIDGenerator replaces the random line identifier source.
func WithIDGenerator(gen func() string) Option {
	return func(c *Cart) { c.newID = gen }
}

// NewCart creates an empty cart that prices pizzas with calc.
func NewCart(calc pricing.Calculator, opts ...Option) *Cart {
	c := &Cart{
		pricing: calc,
		issued:  make(map[string]struct{}),
		newID:   pos.NewLineID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// nextID returns an identifier this cart has never handed out.
func (c *Cart) nextID() string {
	for {
		id := c.newID()
		if _, used := c.issued[id]; !used {
			c.issued[id] = struct{}{}
			return id
		}
	}
}

func (c *Cart) index(id string) int {
	for i, li := range c.items {
		if li.ID == id {
			return i
		}
	}
	return -1
}

// Len is the number of line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, li := range c.items {
		out[i] = li.clone()
	}
	return out
}

// Find returns a copy of the line item with the given identifier.
func (c *Cart) Find(id string) (LineItem, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i].clone(), true
	}
	return LineItem{}, false
}

// Pricing exposes the calculator the cart prices pizzas with.
func (c *Cart) Pricing() pricing.Calculator {
	return c.pricing
}

func (c *Cart) append(li *LineItem) LineItem {
	li.ID = c.nextID()
	li.setQuantity(1)
	c.items = append(c.items, li)
	return li.clone()
}
