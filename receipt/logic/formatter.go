// Package logic turns a cart into a fixed-width receipt for a thermal
// printer.
package logic

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
)

// RowKind tells item, continuation and footer rows apart.
type RowKind int

const (
	// RowItem is the first row of a line item and carries its quantity and total.
	RowItem RowKind = iota
	// RowContinuation holds the rest of a wrapped name.
	RowContinuation
	// RowFooter is one of the subtotal, tax and total rows.
	RowFooter
)

// Row is one line of the item table.
type Row struct {
	Kind     RowKind
	Label    string
	Quantity int
	Amount   decimal.Decimal
}

// Order is what gets printed.
type Order struct {
	Number string
	Items  []cart.LineItem
	Totals cart.Totals
}

// NewOrder snapshots a cart under an order number.
func NewOrder(number string, c *cart.Cart) Order {
	return Order{Number: number, Items: c.Items(), Totals: c.Totals()}
}

// Shop is printed at the top of every receipt.
type Shop struct {
	Name    string
	Address string
	Phone   string
}

// DefaultShop is used when no shop details are configured.
func DefaultShop() Shop {
	return Shop{
		Name:    "PIZZA SHOP",
		Address: "123 Pizza Street, Food City",
		Phone:   "(123) 456-7890",
	}
}

// DateLayout formats the receipt timestamp.
const DateLayout = "2006-01-02 15:04:05"

// Formatter renders receipts. Now is called once per Format.
type Formatter struct {
	Layout Layout
	Shop   Shop
	Now    func() time.Time
}

// NewFormatter creates a formatter with the given layout and shop.
func NewFormatter(layout Layout, shop Shop) *Formatter {
	return &Formatter{Layout: layout.normalized(), Shop: shop, Now: time.Now}
}

// TaxLabel is the footer label for the tax row.
func TaxLabel() string {
	return fmt.Sprintf("Tax (%s%%):", cart.TaxRate.Shift(2).String())
}

// Rows yields the item table: each line item's wrapped name, then the three
// footer rows. The sequence is finite and can be ranged over repeatedly.
func (f *Formatter) Rows(order Order) iter.Seq[Row] {
	layout := f.Layout.normalized()
	return func(yield func(Row) bool) {
		for _, li := range order.Items {
			for i, chunk := range Wrap(li.Name, layout.NameWidth) {
				row := Row{Kind: RowContinuation, Label: chunk}
				if i == 0 {
					row = Row{Kind: RowItem, Label: chunk, Quantity: li.Quantity, Amount: li.TotalPrice}
				}
				if !yield(row) {
					return
				}
			}
		}
		footer := []Row{
			{Kind: RowFooter, Label: "Subtotal:", Amount: order.Totals.Subtotal},
			{Kind: RowFooter, Label: TaxLabel(), Amount: order.Totals.Tax},
			{Kind: RowFooter, Label: "Total:", Amount: order.Totals.GrandTotal},
		}
		for _, row := range footer {
			if !yield(row) {
				return
			}
		}
	}
}

// Lines renders the item table rows as text.
func (f *Formatter) Lines(order Order) iter.Seq[string] {
	layout := f.Layout.normalized()
	return func(yield func(string) bool) {
		inFooter := false
		for row := range f.Rows(order) {
			if row.Kind == RowFooter && !inFooter {
				inFooter = true
				if !yield(layout.Rule()) {
					return
				}
			}
			if !yield(layout.Render(row)) {
				return
			}
		}
	}
}

// Format renders the whole receipt. With a fixed clock the output depends
// only on the order.
func (f *Formatter) Format(order Order) string {
	layout := f.Layout.normalized()
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}

	var lines []string
	if f.Shop.Name != "" {
		lines = append(lines, layout.Center(f.Shop.Name))
	}
	if f.Shop.Address != "" {
		lines = append(lines, layout.Center(f.Shop.Address))
	}
	if f.Shop.Phone != "" {
		lines = append(lines, layout.Center("Tel: "+f.Shop.Phone))
	}
	lines = append(lines, layout.Rule())
	lines = append(lines, fmt.Sprintf("Order #: %s", order.Number))
	lines = append(lines, fmt.Sprintf("Date: %s", now().Format(DateLayout)))
	lines = append(lines, layout.Rule())
	lines = append(lines, layout.Header())
	lines = append(lines, layout.Rule())
	for line := range f.Lines(order) {
		lines = append(lines, line)
	}
	lines = append(lines, layout.Rule())
	lines = append(lines, layout.Center("Thank you for your purchase!"))
	lines = append(lines, layout.Center("Please visit again"))

	return strings.Join(lines, "\n") + "\n"
}

// Print writes the formatted receipt to w.
func (f *Formatter) Print(w io.Writer, order Order) error {
	_, err := io.WriteString(w, f.Format(order))
	return err
}
