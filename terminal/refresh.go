package terminal

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Fmfizzy/PizzaPOS/menu"
)

// Refresh reloads the menu and the next order number. Both are fetched off
// the loop; if either fails nothing is applied.
func (t *Terminal) Refresh(ctx context.Context) error {
	var (
		catalog *menu.Catalog
		orderNo string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = t.backend.Menu(gctx)
		return errors.Wrap(err, "load menu")
	})
	g.Go(func() error {
		var err error
		orderNo, err = t.backend.LatestOrderNo(gctx)
		return errors.Wrap(err, "load order number")
	})
	if err := g.Wait(); err != nil {
		t.logger.Warn("refresh failed", zap.Error(err))
		return err
	}

	err := t.do(ctx, func() {
		t.catalog = catalog
		if !t.placing {
			t.orderNo = orderNo
		}
	})
	if err != nil {
		return err
	}
	t.logger.Info("menu refreshed",
		zap.Int("pizzas", len(catalog.Pizzas)),
		zap.Int("beverages", len(catalog.Beverages)),
		zap.Int("toppings", len(catalog.Toppings)),
		zap.String("order_no", orderNo))
	return nil
}
