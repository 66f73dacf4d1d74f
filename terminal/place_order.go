package terminal

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/Fmfizzy/PizzaPOS/api"
	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/pos"
)

// PlaceOrder sends the cart to the backend. On success the cart is cleared
// and the order number moves on; on failure the cart is left as it was.
// The cart cannot be edited while the request is in flight.
func (t *Terminal) PlaceOrder(ctx context.Context) (OrderResult, error) {
	payload, err := call(ctx, t, func() (cart.OrderPayload, error) {
		if err := t.editable(); err != nil {
			return cart.OrderPayload{}, err
		}
		if t.orderNo == "" {
			return cart.OrderPayload{}, pos.NewFailedPrecondition(ErrMsgNoOrderNumber)
		}
		p, err := t.cart.ToOrderPayload(t.orderNo)
		if err != nil {
			return cart.OrderPayload{}, err
		}
		t.placing = true
		return p, nil
	})
	if err != nil {
		return OrderResult{}, err
	}

	invoice, placeErr := t.backend.CreateInvoice(ctx, payload)

	// The outcome is applied even if ctx was cancelled meanwhile.
	applyCtx := context.WithoutCancel(ctx)
	result, err := call(applyCtx, t, func() (OrderResult, error) {
		t.placing = false
		if placeErr != nil {
			return OrderResult{}, placeErr
		}
		t.cart.Clear()
		t.orderNo = nextOrderNo(payload.OrderNo)
		return OrderResult{Invoice: invoice, OrderNo: payload.OrderNo, NextOrderNo: t.orderNo}, nil
	})
	if err != nil {
		t.logger.Warn("order placement failed",
			zap.String("order_no", payload.OrderNo),
			zap.Error(err))
		return OrderResult{}, err
	}

	t.logger.Info("order placed",
		zap.String("order_no", payload.OrderNo),
		zap.Int("invoice_id", invoice.ID),
		zap.Int("lines", len(payload.Items)))

	latest, err := t.backend.LatestOrderNo(ctx)
	if err != nil {
		t.logger.Warn("order number refresh failed", zap.Error(err))
		return result, nil
	}
	_ = t.do(applyCtx, func() {
		if !t.placing {
			t.orderNo = latest
		}
	})
	result.NextOrderNo = latest
	return result, nil
}

// nextOrderNo increments a numeric order number. Anything else is kept
// until the backend supplies the next one.
func nextOrderNo(orderNo string) string {
	n, err := strconv.Atoi(orderNo)
	if err != nil {
		return orderNo
	}
	return strconv.Itoa(n + 1)
}

// IsBackendError reports whether err came from the REST API rather than
// from a rejected command.
func IsBackendError(err error) bool {
	_, ok := api.AsError(err)
	return ok
}
