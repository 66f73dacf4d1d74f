package terminal

import (
	"context"

	"github.com/Fmfizzy/PizzaPOS/api"
	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
)

// Session is one cashier's view of an order terminal. *Terminal serves it
// in-process and *Client serves it over gRPC.
type Session interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Menu(ctx context.Context) (*menu.Catalog, error)
	AddPizza(ctx context.Context, itemID int, size menu.Size, toppings []ToppingChoice) (cart.LineItem, error)
	AddBeverage(ctx context.Context, itemID int) (cart.LineItem, error)
	SetQuantity(ctx context.Context, lineID string, n int) (cart.LineItem, error)
	Increment(ctx context.Context, lineID string) (cart.LineItem, error)
	Decrement(ctx context.Context, lineID string) (cart.LineItem, error)
	RemoveItem(ctx context.Context, lineID string) (bool, error)
	Clear(ctx context.Context) error
	Receipt(ctx context.Context) (string, error)
	PlaceOrder(ctx context.Context) (OrderResult, error)
	Refresh(ctx context.Context) error
}

// Snapshot is a copy of the terminal state.
type Snapshot struct {
	OrderNo    string
	Items      []cart.LineItem
	Totals     cart.Totals
	MenuLoaded bool
	Placing    bool
}

// ToppingChoice picks a topping by ID for AddPizza.
type ToppingChoice struct {
	ToppingID int `json:"topping_id"`
	Quantity  int `json:"quantity"`
}

// OrderResult describes a placed order.
type OrderResult struct {
	Invoice     api.Invoice
	OrderNo     string
	NextOrderNo string
}
