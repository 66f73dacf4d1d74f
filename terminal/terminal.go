// Package terminal runs an order terminal: it owns the cart, the loaded menu
// and the current order number, and applies every change on a single
// goroutine. Backend requests run on the caller's goroutine and only their
// results are applied on the loop.
package terminal

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Fmfizzy/PizzaPOS/api"
	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pricing"
	receipt "github.com/Fmfizzy/PizzaPOS/receipt/logic"
)

// DefaultOrderNo is used until the backend reports one.
const DefaultOrderNo = "10000"

// Backend is the part of the REST API the terminal needs.
type Backend interface {
	Menu(ctx context.Context) (*menu.Catalog, error)
	LatestOrderNo(ctx context.Context) (string, error)
	CreateInvoice(ctx context.Context, payload cart.OrderPayload) (api.Invoice, error)
}

// Terminal implements Session in-process.
type Terminal struct {
	backend   Backend
	logger    *zap.Logger
	calc      pricing.Calculator
	formatter *receipt.Formatter
	cartOpts  []cart.Option

	cmds    chan func()
	stopped chan struct{}
	running atomic.Bool

	// Owned by the loop goroutine.
	cart    *cart.Cart
	catalog *menu.Catalog
	orderNo string
	placing bool
}

var _ Session = (*Terminal)(nil)

// Option configures a Terminal.
type Option func(*Terminal)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Terminal) { t.logger = logger }
}

// WithCalculator sets the pricing policy for pizzas.
func WithCalculator(calc pricing.Calculator) Option {
	return func(t *Terminal) { t.calc = calc }
}

// WithFormatter sets the receipt formatter.
func WithFormatter(f *receipt.Formatter) Option {
	return func(t *Terminal) { t.formatter = f }
}

// WithOrderNo sets the order number used before the first refresh.
func WithOrderNo(orderNo string) Option {
	return func(t *Terminal) { t.orderNo = orderNo }
}

// WithCartOptions passes options to the cart.
func WithCartOptions(opts ...cart.Option) Option {
	return func(t *Terminal) { t.cartOpts = append(t.cartOpts, opts...) }
}

// New creates a terminal. Call Run before using it.
func New(backend Backend, opts ...Option) *Terminal {
	t := &Terminal{
		backend:   backend,
		logger:    zap.NewNop(),
		formatter: receipt.NewFormatter(receipt.DefaultLayout(), receipt.DefaultShop()),
		cmds:      make(chan func()),
		stopped:   make(chan struct{}),
		orderNo:   DefaultOrderNo,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.cart = cart.NewCart(t.calc, t.cartOpts...)
	return t
}

// Run applies posted changes until ctx is cancelled. It must be called
// exactly once.
func (t *Terminal) Run(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(t.stopped)

	t.logger.Info("terminal started", zap.String("order_no", t.orderNo))
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("terminal stopped")
			return ctx.Err()
		case fn := <-t.cmds:
			fn()
		}
	}
}

// do runs fn on the loop and waits for it.
func (t *Terminal) do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	task := func() {
		defer close(done)
		fn()
	}
	select {
	case t.cmds <- task:
	case <-ctx.Done():
		return ctx.Err()
	case <-t.stopped:
		return ErrStopped
	}
	<-done
	return nil
}

func call[T any](ctx context.Context, t *Terminal, fn func() (T, error)) (T, error) {
	var (
		out T
		err error
	)
	if postErr := t.do(ctx, func() { out, err = fn() }); postErr != nil {
		var zero T
		return zero, postErr
	}
	return out, err
}
