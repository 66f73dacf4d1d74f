package menu

// Catalog is the read-only menu loaded from the backend.
type Catalog struct {
	Pizzas    []*Pizza
	Beverages []*Beverage
	Toppings  []Topping
}

// Pizza finds a pizza by item ID.
func (c *Catalog) Pizza(id int) (*Pizza, bool) {
	for _, p := range c.Pizzas {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Beverage finds a beverage by item ID.
func (c *Catalog) Beverage(id int) (*Beverage, bool) {
	for _, b := range c.Beverages {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Topping finds a topping by ID.
func (c *Catalog) Topping(id int) (Topping, bool) {
	for _, t := range c.Toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// AvailableToppings lists the toppings a cashier may offer right now.
func (c *Catalog) AvailableToppings() []Topping {
	var out []Topping
	for _, t := range c.Toppings {
		if t.Available {
			out = append(out, t)
		}
	}
	return out
}

// Empty reports whether nothing has been loaded.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.Pizzas)+len(c.Beverages)+len(c.Toppings) == 0
}
