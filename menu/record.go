package menu

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Fmfizzy/PizzaPOS/pos"
)

// Record is an item exactly as GET /api/items returns it. Price is only set
// for beverages.
type Record struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	IsAvailable bool             `json:"is_available"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	ImagePath   string           `json:"image_path"`
	CreatedAt   time.Time        `json:"created_at"`
}

// PizzaRecord is a pizza as GET /api/pizzas-with-prices returns it.
type PizzaRecord struct {
	Record
	Prices map[string]decimal.Decimal `json:"prices"`
}

func (r Record) info(category Category) Info {
	return Info{
		ID:          r.ID,
		Name:        r.Name,
		Category:    category,
		Description: r.Description,
		Available:   r.IsAvailable,
		ImagePath:   r.ImagePath,
		CreatedAt:   r.CreatedAt,
	}
}

// FromRecord converts a backend record into the matching variant. A pizza
// read from the items endpoint carries no prices; a beverage without a
// price is rejected rather than silently skipped.
func FromRecord(r Record) (Item, error) {
	category, err := ParseCategory(r.Category)
	if err != nil {
		return nil, err
	}
	switch category {
	case CategoryBeverage:
		if r.Price == nil {
			return nil, pos.NewInvalidArgument(ErrMsgBeveragePriceRequired)
		}
		return &Beverage{Info: r.info(category), Price: *r.Price}, nil
	default:
		return &Pizza{Info: r.info(category), Prices: PriceTable{}}, nil
	}
}

// FromPizzaRecord converts a pizza with its size prices. Price keys that are
// not a known size are ignored.
func FromPizzaRecord(r PizzaRecord) (*Pizza, error) {
	if r.Category != "" {
		category, err := ParseCategory(r.Category)
		if err != nil {
			return nil, err
		}
		if category != CategoryPizza {
			return nil, pos.NewInvalidArgumentf(ErrMsgPizzaRecordNotPizza, r.ID)
		}
	}
	prices := make(PriceTable, len(r.Prices))
	for key, price := range r.Prices {
		size, err := ParseSize(key)
		if err != nil {
			continue
		}
		prices[size] = price
	}
	return &Pizza{Info: r.info(CategoryPizza), Prices: prices}, nil
}

// Beverages converts item records, keeping the beverages. Records that fail
// conversion are returned alongside so the caller can report them.
func Beverages(records []Record) ([]*Beverage, []error) {
	var (
		out  []*Beverage
		errs []error
	)
	for _, r := range records {
		item, err := FromRecord(r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if b, ok := item.(*Beverage); ok {
			out = append(out, b)
		}
	}
	return out, errs
}
