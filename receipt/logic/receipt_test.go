package logic

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/datadriven"
	"github.com/shopspring/decimal"

	cart "github.com/Fmfizzy/PizzaPOS/cart/logic"
	"github.com/Fmfizzy/PizzaPOS/pricing"
)

var fixedNow = time.Date(2026, 10, 14, 12, 30, 0, 0, time.UTC)

func testFormatter() *Formatter {
	f := NewFormatter(DefaultLayout(), DefaultShop())
	f.Now = func() time.Time { return fixedNow }
	return f
}

// parseOrder reads "name | qty | unit price" lines.
func parseOrder(t *testing.T, number, input string) Order {
	t.Helper()
	var items []cart.LineItem
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) != 3 {
			t.Fatalf("expected name | qty | price, got %q", line)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			t.Fatalf("bad quantity in %q: %v", line, err)
		}
		unit := decimal.RequireFromString(strings.TrimSpace(fields[2]))
		items = append(items, cart.LineItem{
			Name:       strings.TrimSpace(fields[0]),
			Quantity:   qty,
			UnitPrice:  unit,
			TotalPrice: unit.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	return Order{Number: number, Items: items, Totals: cart.ComputeTotals(items)}
}

func kindName(k RowKind) string {
	switch k {
	case RowItem:
		return "item"
	case RowContinuation:
		return "continuation"
	default:
		return "footer"
	}
}

func TestReceiptDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/receipt", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "wrap":
			var width int
			d.ScanArgs(t, "width", &width)
			return strings.Join(Wrap(d.Input, width), "\n") + "\n"

		case "receipt":
			var number string
			d.ScanArgs(t, "order", &number)
			return testFormatter().Format(parseOrder(t, number, d.Input))

		case "rows":
			var buf bytes.Buffer
			for row := range testFormatter().Rows(parseOrder(t, "1", d.Input)) {
				switch row.Kind {
				case RowContinuation:
					fmt.Fprintf(&buf, "%s %s\n", kindName(row.Kind), row.Label)
				case RowFooter:
					fmt.Fprintf(&buf, "%s %s %s\n", kindName(row.Kind), row.Label, row.Amount)
				default:
					fmt.Fprintf(&buf, "%s %s %d %s\n", kindName(row.Kind), row.Label, row.Quantity, row.Amount)
				}
			}
			return buf.String()

		default:
			t.Fatalf("unknown command %q", d.Cmd)
			return ""
		}
	})
}

func TestWrap_EdgeCases(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"", 12, []string{""}},
		{"   ", 12, []string{""}},
		{"Cola", 12, []string{"Cola"}},
		{"Exactly12Chr", 12, []string{"Exactly12Chr"}},
		{"Exactly12Chr tail", 12, []string{"Exactly12Chr", "tail"}},
		{"Pâté Spéciale Maison", 6, []string{"Pâté", "Spécia", "le", "Maison"}},
		{"no width", 0, []string{"no width"}},
	}
	for _, tt := range tests {
		got := Wrap(tt.text, tt.width)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("Wrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestWrap_ChunksNeverExceedWidth(t *testing.T) {
	names := []string{
		"Pepperoni Feast Supreme",
		"A B C D E F G H I J K L M N O P",
		"Supercalifragilisticexpialidocious pizza",
		"  leading and trailing  ",
	}
	for _, name := range names {
		for width := 1; width <= 15; width++ {
			for _, chunk := range Wrap(name, width) {
				if n := len([]rune(chunk)); n > width {
					t.Errorf("Wrap(%q, %d) produced %q (%d runes)", name, width, chunk, n)
				}
			}
		}
	}
}

func TestRows_FirstChunkCarriesQuantity(t *testing.T) {
	order := parseOrder(t, "1", "Pepperoni Feast Supreme | 2 | 1500")

	var rows []Row
	for row := range testFormatter().Rows(order) {
		rows = append(rows, row)
	}
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[0].Kind != RowItem || rows[0].Quantity != 2 || rows[0].Amount.String() != "3000" {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	for _, row := range rows[1:3] {
		if row.Kind != RowContinuation || row.Quantity != 0 || !row.Amount.IsZero() {
			t.Errorf("continuation row must leave quantity and price blank, got %+v", row)
		}
	}
}

func TestRows_StopsEarly(t *testing.T) {
	order := parseOrder(t, "1", "Pepperoni Feast Supreme | 1 | 1500")
	count := 0
	for range testFormatter().Rows(order) {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("expected to stop after 2 rows, got %d", count)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	order := parseOrder(t, "10001", "Pepperoni Feast Supreme | 1 | 1500\nCola | 3 | 250")
	f := testFormatter()

	first := f.Format(order)
	second := f.Format(order)
	if first != second {
		t.Errorf("expected identical output on identical input")
	}

	var buf bytes.Buffer
	if err := f.Print(&buf, order); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if buf.String() != first {
		t.Errorf("Print output differs from Format")
	}
}

func TestFormat_LinesFitWidth(t *testing.T) {
	order := parseOrder(t, "10001", "Margherita | 2 | 1200\nGarlic Bread With Cheese | 1 | 450")
	for _, line := range strings.Split(strings.TrimRight(testFormatter().Format(order), "\n"), "\n") {
		if n := len([]rune(line)); n > 32 {
			t.Errorf("line %q is %d wide", line, n)
		}
	}
}

func TestNewOrder_FromCart(t *testing.T) {
	order := NewOrder("10005", cart.NewCart(pricing.Calculator{}))
	if order.Number != "10005" || len(order.Items) != 0 {
		t.Errorf("unexpected order %+v", order)
	}
	if !order.Totals.GrandTotal.IsZero() {
		t.Errorf("expected zero total, got %s", order.Totals.GrandTotal)
	}
}

func TestLayout_Normalized(t *testing.T) {
	l := Layout{Width: 10, NameWidth: 12, QtyWidth: 5}.normalized()
	if l.Width < l.NameWidth+l.QtyWidth+1 {
		t.Errorf("width %d leaves no room for prices", l.Width)
	}
	if got := (Layout{}).Money(decimal.RequireFromString("3.5")); got != "3.50" {
		t.Errorf("expected 3.50, got %q", got)
	}
}

func TestTaxLabel(t *testing.T) {
	if got := TaxLabel(); got != "Tax (5%):" {
		t.Errorf("expected Tax (5%%):, got %q", got)
	}
}
