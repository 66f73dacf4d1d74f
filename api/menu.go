package api

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Fmfizzy/PizzaPOS/menu"
)

// Menu loads pizzas, beverages and toppings concurrently. Any failed request
// fails the whole load. Beverages the backend sends without a price are left
// out and logged.
func (c *Client) Menu(ctx context.Context) (*menu.Catalog, error) {
	var (
		pizzas   []*menu.Pizza
		records  []menu.Record
		toppings []menu.Topping
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pizzas, err = c.PizzasWithPrices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = c.ItemsByCategory(gctx, menu.CategoryBeverage)
		return err
	})
	g.Go(func() error {
		var err error
		toppings, err = c.Toppings(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	beverages, errs := menu.Beverages(records)
	for _, err := range errs {
		c.logger.Warn("skipping beverage", zap.Error(err))
	}

	return &menu.Catalog{Pizzas: pizzas, Beverages: beverages, Toppings: toppings}, nil
}
