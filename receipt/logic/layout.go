package logic

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Layout sets the character columns of a receipt.
type Layout struct {
	Width     int    // total line width
	NameWidth int    // item name column; names wrap at this width
	QtyWidth  int    // quantity column, centered
	Currency  string // prefix for every amount
}

// DefaultLayout fits a 58mm thermal roll.
func DefaultLayout() Layout {
	return Layout{Width: 32, NameWidth: 12, QtyWidth: 5, Currency: "Rs"}
}

func (l Layout) normalized() Layout {
	d := DefaultLayout()
	if l.NameWidth < 1 {
		l.NameWidth = d.NameWidth
	}
	if l.QtyWidth < 1 {
		l.QtyWidth = d.QtyWidth
	}
	if l.Width < l.NameWidth+l.QtyWidth+1 {
		l.Width = max(d.Width, l.NameWidth+l.QtyWidth+1)
	}
	return l
}

func (l Layout) priceWidth() int {
	return l.Width - l.NameWidth - l.QtyWidth
}

// Money renders an amount with two decimals and the currency prefix.
func (l Layout) Money(amount decimal.Decimal) string {
	if l.Currency == "" {
		return amount.StringFixed(2)
	}
	return l.Currency + " " + amount.StringFixed(2)
}

// Render lays a row out across the columns.
func (l Layout) Render(r Row) string {
	switch r.Kind {
	case RowFooter:
		return padLeft(r.Label, l.NameWidth+l.QtyWidth) + padLeft(l.Money(r.Amount), l.priceWidth())
	case RowContinuation:
		return strings.TrimRight(padRight(r.Label, l.NameWidth), " ")
	default:
		return padRight(r.Label, l.NameWidth) +
			center(fmt.Sprint(r.Quantity), l.QtyWidth) +
			padLeft(l.Money(r.Amount), l.priceWidth())
	}
}

// Header is the column title line.
func (l Layout) Header() string {
	return padRight("Item", l.NameWidth) + center("Qty", l.QtyWidth) + padLeft("Price", l.priceWidth())
}

// Rule is a dashed separator spanning the full width.
func (l Layout) Rule() string {
	return strings.Repeat("-", l.Width)
}

// Center centers text on the full width.
func (l Layout) Center(s string) string {
	return strings.TrimRight(center(s, l.Width), " ")
}

func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
