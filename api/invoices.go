package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Invoices lists placed orders.
func (c *Client) Invoices(ctx context.Context) ([]Invoice, error) {
	var out []Invoice
	if err := c.getJSON(ctx, "/api/invoices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoice fetches one placed order.
func (c *Client) Invoice(ctx context.Context, id int) (Invoice, error) {
	var out Invoice
	err := c.getJSON(ctx, fmt.Sprintf("/api/invoices/%d", id), &out)
	return out, err
}

// InvoiceItems lists the lines of one placed order.
func (c *Client) InvoiceItems(ctx context.Context, id int) ([]InvoiceItem, error) {
	var out []InvoiceItem
	if err := c.getJSON(ctx, fmt.Sprintf("/api/invoices/%d/items", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LatestOrderNo returns the order number to use for the next order. The
// backend may send it as a string or a number.
func (c *Client) LatestOrderNo(ctx context.Context) (string, error) {
	const path = "/api/invoices/latest-order-no"
	var out struct {
		OrderNo json.RawMessage `json:"order_no"`
	}
	if err := c.getJSON(ctx, path, &out); err != nil {
		return "", err
	}
	orderNo := strings.Trim(strings.TrimSpace(string(out.OrderNo)), `"`)
	if orderNo == "" || orderNo == "null" {
		return "", errors.Newf("GET %s: response has no order_no", path)
	}
	return orderNo, nil
}

// IdempotencyHeader carries a key derived from the order number so a
// backend that honours it can drop a repeated placement.
const IdempotencyHeader = "Idempotency-Key"

// CreateInvoice places an order.
func (c *Client) CreateInvoice(ctx context.Context, payload cart.OrderPayload) (Invoice, error) {
	header := http.Header{}
	header.Set(IdempotencyHeader, pos.OrderRoot(payload.OrderNo).String())

	var out Invoice
	err := c.doJSONWithHeader(ctx, http.MethodPost, "/api/invoices", header, payload, &out)
	return out, err
}
