package logic

import (
	"strings"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// OrderPayload is the body of POST /api/invoices.
type OrderPayload struct {
	OrderNo string        `json:"order_no"`
	Items   []PayloadItem `json:"items"`
}

// PayloadItem is one line of an order.
type PayloadItem struct {
	ItemID    int              `json:"item_id"`
	ItemName  string           `json:"item_name"`
	PizzaSize string           `json:"pizza_size,omitempty"`
	Quantity  int              `json:"quantity"`
	UnitPrice float64          `json:"unit_price"`
	Toppings  []PayloadTopping `json:"toppings"`
}

// PayloadTopping is a topping reference on an order line.
type PayloadTopping struct {
	ToppingID int `json:"topping_id"`
	Quantity  int `json:"quantity"`
}

// ToOrderPayload serializes the cart for order placement.
func (c *Cart) ToOrderPayload(orderNo string) (OrderPayload, error) {
	orderNo = strings.TrimSpace(orderNo)
	if err := pos.RequireNotEmpty(orderNo, ErrMsgOrderNoRequired); err != nil {
		return OrderPayload{}, err
	}
	if err := pos.RequireItems(c.items, ErrMsgCartEmpty); err != nil {
		return OrderPayload{}, err
	}

	payload := OrderPayload{OrderNo: orderNo, Items: make([]PayloadItem, 0, len(c.items))}
	for _, li := range c.items {
		item := PayloadItem{
			ItemID:    li.ItemID,
			ItemName:  li.Name,
			PizzaSize: string(li.Size),
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice.InexactFloat64(),
			Toppings:  make([]PayloadTopping, 0, len(li.Toppings)),
		}
		for _, t := range li.Toppings {
			item.Toppings = append(item.Toppings, PayloadTopping{ToppingID: t.ID, Quantity: t.Quantity})
		}
		payload.Items = append(payload.Items, item)
	}
	return payload, nil
}
