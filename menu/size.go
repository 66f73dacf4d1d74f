package menu

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Size is a pizza size label.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// DefaultSize is preselected when a pizza is first customized.
const DefaultSize = SizeLarge

// Sizes lists every size in display order.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// ParseSize accepts a full label or its one-letter abbreviation, in any case.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small", "s":
		return SizeSmall, nil
	case "medium", "m":
		return SizeMedium, nil
	case "large", "l":
		return SizeLarge, nil
	}
	return "", pos.NewInvalidArgumentf(ErrMsgUnknownSize, s)
}

// Valid reports whether s is one of Sizes.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Abbrev is the one-letter label shown on size buttons.
func (s Size) Abbrev() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s)[:1])
}

// Title is the capitalized label ("Large").
func (s Size) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s)[:1]) + string(s)[1:]
}

// PriceTable maps each size to the pizza's base price.
type PriceTable map[Size]decimal.Decimal

// Price looks up the base price for a size.
func (t PriceTable) Price(size Size) (decimal.Decimal, bool) {
	p, ok := t[size]
	return p, ok
}

// Missing returns the sizes that have no price, in display order.
func (t PriceTable) Missing() []Size {
	var missing []Size
	for _, size := range Sizes {
		if _, ok := t[size]; !ok {
			missing = append(missing, size)
		}
	}
	return missing
}
