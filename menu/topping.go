package menu

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Topping is an extra that can be added to a pizza, any number of times.
type Topping struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"is_available"`
	CreatedAt time.Time       `json:"created_at"`
}

// SelectedTopping is a topping together with how many portions were chosen.
type SelectedTopping struct {
	Topping
	Quantity int `json:"quantity"`
}

// Surcharge is price × quantity.
func (s SelectedTopping) Surcharge() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// CheckToppings validates a selection handed to the cart: every quantity is
// at least one, no topping appears twice, and each one is available and
// non-negatively priced.
func CheckToppings(toppings []SelectedTopping) error {
	seen := make(map[int]bool, len(toppings))
	for _, t := range toppings {
		if t.Quantity < 1 {
			return pos.NewInvalidArgument(ErrMsgToppingQuantity)
		}
		if seen[t.ID] {
			return pos.NewInvalidArgumentf(ErrMsgDuplicateTopping, t.ID)
		}
		seen[t.ID] = true
		if t.Price.IsNegative() {
			return pos.NewInvalidArgumentf(ErrMsgToppingNegativePrice, t.Name)
		}
		if !t.Available {
			return pos.NewFailedPreconditionf(ErrMsgToppingUnavailable, t.Name)
		}
	}
	return nil
}

// DescribeToppings renders "Pepperoni (2x), Olives (1x)".
func DescribeToppings(toppings []SelectedTopping) string {
	parts := make([]string, len(toppings))
	for i, t := range toppings {
		parts[i] = fmt.Sprintf("%s (%dx)", t.Name, t.Quantity)
	}
	return strings.Join(parts, ", ")
}

// ToppingSelection is the set of toppings being chosen for one pizza. It
// holds at most one entry per topping, in the order they were first added,
// and never an entry with quantity zero.
type ToppingSelection struct {
	entries []SelectedTopping
}

// NewToppingSelection seeds a selection, merging repeated toppings.
func NewToppingSelection(initial []SelectedTopping) (*ToppingSelection, error) {
	s := &ToppingSelection{}
	for _, t := range initial {
		if t.Quantity < 1 {
			return nil, pos.NewInvalidArgument(ErrMsgToppingQuantity)
		}
		if i := s.index(t.ID); i >= 0 {
			s.entries[i].Quantity += t.Quantity
			continue
		}
		s.entries = append(s.entries, t)
	}
	return s, nil
}

func (s *ToppingSelection) index(id int) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Add puts one more portion of t on the pizza and returns its new quantity.
func (s *ToppingSelection) Add(t Topping) int {
	if i := s.index(t.ID); i >= 0 {
		s.entries[i].Quantity++
		return s.entries[i].Quantity
	}
	s.entries = append(s.entries, SelectedTopping{Topping: t, Quantity: 1})
	return 1
}

// RemoveOne takes one portion off; the entry disappears with its last portion.
func (s *ToppingSelection) RemoveOne(id int) {
	i := s.index(id)
	if i < 0 {
		return
	}
	if s.entries[i].Quantity > 1 {
		s.entries[i].Quantity--
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// Remove drops every portion of a topping.
func (s *ToppingSelection) Remove(id int) {
	if i := s.index(id); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// Quantity returns how many portions of a topping are selected.
func (s *ToppingSelection) Quantity(id int) int {
	if i := s.index(id); i >= 0 {
		return s.entries[i].Quantity
	}
	return 0
}

// Len is the number of distinct toppings.
func (s *ToppingSelection) Len() int {
	return len(s.entries)
}

// Items returns a copy of the selection.
func (s *ToppingSelection) Items() []SelectedTopping {
	out := make([]SelectedTopping, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear empties the selection.
func (s *ToppingSelection) Clear() {
	s.entries = nil
}

func (s *ToppingSelection) String() string {
	return DescribeToppings(s.entries)
}
