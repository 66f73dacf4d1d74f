package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a placed order as the backend stores it.
type Invoice struct {
	ID          int             `json:"id"`
	OrderNo     string          `json:"order_no"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []InvoiceItem   `json:"items,omitempty"`
}

// InvoiceItem is one line of a placed order.
type InvoiceItem struct {
	ID        int                  `json:"id"`
	InvoiceID int                  `json:"invoice_id"`
	ItemName  string               `json:"item_name"`
	Quantity  int                  `json:"quantity"`
	UnitPrice decimal.Decimal      `json:"unit_price"`
	Subtotal  decimal.Decimal      `json:"subtotal"`
	Toppings  []InvoiceItemTopping `json:"toppings,omitempty"`
}

// InvoiceItemTopping is a topping recorded on an invoice line.
type InvoiceItemTopping struct {
	ID        int             `json:"id"`
	ToppingID int             `json:"topping_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateItemRequest is the body of POST /api/items.
type CreateItemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImagePath   string   `json:"image_path"`
}

// UpdateItemRequest is the body of PUT /api/items/{id}. Nil fields are left
// unchanged by the backend.
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	IsAvailable *bool    `json:"is_available,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImagePath   string   `json:"image_path,omitempty"`
}

// PizzaPriceRequest sets one size's price for a pizza.
type PizzaPriceRequest struct {
	ItemID int     `json:"item_id"`
	Size   string  `json:"size"`
	Price  float64 `json:"price"`
}

// PizzaPrice is a stored size price.
type PizzaPrice struct {
	ID        int             `json:"id"`
	ItemID    int             `json:"item_id"`
	Size      string          `json:"size"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

type uploadResponse struct {
	FilePath string `json:"filepath"`
}
