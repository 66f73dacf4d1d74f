package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/Fmfizzy/PizzaPOS/menu"
)

// PizzasWithPrices lists the pizzas with their size prices.
func (c *Client) PizzasWithPrices(ctx context.Context) ([]*menu.Pizza, error) {
	var records []menu.PizzaRecord
	if err := c.getJSON(ctx, "/api/pizzas-with-prices", &records); err != nil {
		return nil, err
	}
	pizzas := make([]*menu.Pizza, 0, len(records))
	for _, r := range records {
		p, err := menu.FromPizzaRecord(r)
		if err != nil {
			return nil, errors.Wrapf(err, "pizza %d", r.ID)
		}
		pizzas = append(pizzas, p)
	}
	return pizzas, nil
}

// PizzaWithPrices fetches one pizza with its size prices.
func (c *Client) PizzaWithPrices(ctx context.Context, id int) (*menu.Pizza, error) {
	var record menu.PizzaRecord
	if err := c.getJSON(ctx, fmt.Sprintf("/api/pizzas-with-prices/%d", id), &record); err != nil {
		return nil, err
	}
	return menu.FromPizzaRecord(record)
}

// CreatePizzaPrice sets one size's price.
func (c *Client) CreatePizzaPrice(ctx context.Context, req PizzaPriceRequest) (PizzaPrice, error) {
	var out PizzaPrice
	err := c.doJSON(ctx, http.MethodPost, "/api/pizzaprice", req, &out)
	return out, err
}

// UpdatePizzaPrice changes one size's price.
func (c *Client) UpdatePizzaPrice(ctx context.Context, id int, req PizzaPriceRequest) (PizzaPrice, error) {
	var out PizzaPrice
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/pizzaprice/%d", id), req, &out)
	return out, err
}

// Toppings lists every topping.
func (c *Client) Toppings(ctx context.Context) ([]menu.Topping, error) {
	var out []menu.Topping
	if err := c.getJSON(ctx, "/api/toppings", &out); err != nil {
		return nil, err
	}
	return out, nil
}
