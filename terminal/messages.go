package terminal

import (
	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/api"
	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/menu"
)

// Wire messages of the pizzapos.Terminal service, carried by the JSON codec.

// Empty is the request of calls that take no arguments.
type Empty struct{}

type ToppingLine struct {
	ToppingID int             `json:"topping_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type Line struct {
	ID         string          `json:"id"`
	ItemID     int             `json:"item_id"`
	Name       string          `json:"name"`
	Category   menu.Category   `json:"category"`
	Size       menu.Size       `json:"size,omitempty"`
	Toppings   []ToppingLine   `json:"toppings,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type SnapshotResponse struct {
	OrderNo    string          `json:"order_no"`
	Lines      []Line          `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	MenuLoaded bool            `json:"menu_loaded"`
	Placing    bool            `json:"placing"`
}

type MenuResponse struct {
	Pizzas    []*menu.Pizza    `json:"pizzas"`
	Beverages []*menu.Beverage `json:"beverages"`
	Toppings  []menu.Topping   `json:"toppings"`
}

type AddPizzaRequest struct {
	ItemID   int             `json:"item_id"`
	Size     string          `json:"size,omitempty"`
	Toppings []ToppingChoice `json:"toppings,omitempty"`
}

type AddBeverageRequest struct {
	ItemID int `json:"item_id"`
}

type LineRequest struct {
	LineID string `json:"line_id"`
}

type SetQuantityRequest struct {
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}

type LineResponse struct {
	Line Line `json:"line"`
}

type RemoveItemResponse struct {
	Removed bool `json:"removed"`
}

type ReceiptResponse struct {
	Text string `json:"text"`
}

type PlaceOrderResponse struct {
	Invoice     api.Invoice `json:"invoice"`
	OrderNo     string      `json:"order_no"`
	NextOrderNo string      `json:"next_order_no"`
}

func lineFromItem(li cart.LineItem) Line {
	l := Line{
		ID:         li.ID,
		ItemID:     li.ItemID,
		Name:       li.Name,
		Category:   li.Category,
		Size:       li.Size,
		Quantity:   li.Quantity,
		UnitPrice:  li.UnitPrice,
		TotalPrice: li.TotalPrice,
	}
	for _, t := range li.Toppings {
		l.Toppings = append(l.Toppings, ToppingLine{ToppingID: t.ID, Name: t.Name, Price: t.Price, Quantity: t.Quantity})
	}
	return l
}

func (l Line) item() cart.LineItem {
	li := cart.LineItem{
		ID:         l.ID,
		ItemID:     l.ItemID,
		Name:       l.Name,
		Category:   l.Category,
		Size:       l.Size,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		TotalPrice: l.TotalPrice,
	}
	for _, t := range l.Toppings {
		li.Toppings = append(li.Toppings, menu.SelectedTopping{
			Topping:  menu.Topping{ID: t.ToppingID, Name: t.Name, Price: t.Price, Available: true},
			Quantity: t.Quantity,
		})
	}
	return li
}

func snapshotResponse(s Snapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		OrderNo:    s.OrderNo,
		Lines:      make([]Line, len(s.Items)),
		Subtotal:   s.Totals.Subtotal,
		Tax:        s.Totals.Tax,
		GrandTotal: s.Totals.GrandTotal,
		MenuLoaded: s.MenuLoaded,
		Placing:    s.Placing,
	}
	for i, li := range s.Items {
		resp.Lines[i] = lineFromItem(li)
	}
	return resp
}

func (r *SnapshotResponse) snapshot() Snapshot {
	s := Snapshot{
		OrderNo:    r.OrderNo,
		Items:      make([]cart.LineItem, len(r.Lines)),
		Totals:     cart.Totals{Subtotal: r.Subtotal, Tax: r.Tax, GrandTotal: r.GrandTotal},
		MenuLoaded: r.MenuLoaded,
		Placing:    r.Placing,
	}
	for i, l := range r.Lines {
		s.Items[i] = l.item()
	}
	return s
}
