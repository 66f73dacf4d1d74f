package terminal

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Client is a Session served by a remote terminal.
type Client struct {
	conn *grpc.ClientConn
}

var _ Session = (*Client)(nil)

// Dial connects to a terminal at target. The connection is not secured.
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dial terminal %s", target)
	}
	return NewClient(conn), nil
}

// NewClient uses an existing connection.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Conn returns the underlying connection.
func (c *Client) Conn() *grpc.ClientConn {
	return c.conn
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	return c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, grpc.CallContentSubtype(pos.CodecName))
}

func (c *Client) Snapshot(ctx context.Context) (Snapshot, error) {
	var out SnapshotResponse
	if err := c.invoke(ctx, "Snapshot", &Empty{}, &out); err != nil {
		return Snapshot{}, err
	}
	return out.snapshot(), nil
}

func (c *Client) Menu(ctx context.Context) (*menu.Catalog, error) {
	var out MenuResponse
	if err := c.invoke(ctx, "Menu", &Empty{}, &out); err != nil {
		return nil, err
	}
	return &menu.Catalog{Pizzas: out.Pizzas, Beverages: out.Beverages, Toppings: out.Toppings}, nil
}

func (c *Client) AddPizza(ctx context.Context, itemID int, size menu.Size, toppings []ToppingChoice) (cart.LineItem, error) {
	return c.line(ctx, "AddPizza", &AddPizzaRequest{ItemID: itemID, Size: string(size), Toppings: toppings})
}

func (c *Client) AddBeverage(ctx context.Context, itemID int) (cart.LineItem, error) {
	return c.line(ctx, "AddBeverage", &AddBeverageRequest{ItemID: itemID})
}

func (c *Client) SetQuantity(ctx context.Context, lineID string, n int) (cart.LineItem, error) {
	return c.line(ctx, "SetQuantity", &SetQuantityRequest{LineID: lineID, Quantity: n})
}

func (c *Client) Increment(ctx context.Context, lineID string) (cart.LineItem, error) {
	return c.line(ctx, "Increment", &LineRequest{LineID: lineID})
}

func (c *Client) Decrement(ctx context.Context, lineID string) (cart.LineItem, error) {
	return c.line(ctx, "Decrement", &LineRequest{LineID: lineID})
}

func (c *Client) line(ctx context.Context, method string, in any) (cart.LineItem, error) {
	var out LineResponse
	if err := c.invoke(ctx, method, in, &out); err != nil {
		return cart.LineItem{}, err
	}
	return out.Line.item(), nil
}

func (c *Client) RemoveItem(ctx context.Context, lineID string) (bool, error) {
	var out RemoveItemResponse
	if err := c.invoke(ctx, "RemoveItem", &LineRequest{LineID: lineID}, &out); err != nil {
		return false, err
	}
	return out.Removed, nil
}

func (c *Client) Clear(ctx context.Context) error {
	return c.invoke(ctx, "Clear", &Empty{}, &Empty{})
}

func (c *Client) Receipt(ctx context.Context) (string, error) {
	var out ReceiptResponse
	if err := c.invoke(ctx, "Receipt", &Empty{}, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (c *Client) PlaceOrder(ctx context.Context) (OrderResult, error) {
	var out PlaceOrderResponse
	if err := c.invoke(ctx, "PlaceOrder", &Empty{}, &out); err != nil {
		return OrderResult{}, err
	}
	return OrderResult{Invoice: out.Invoice, OrderNo: out.OrderNo, NextOrderNo: out.NextOrderNo}, nil
}

func (c *Client) Refresh(ctx context.Context) error {
	return c.invoke(ctx, "Refresh", &Empty{}, &Empty{})
}
