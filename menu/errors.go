package menu

// Error message constants for the menu domain.
const (
	ErrMsgUnknownCategory        = "Unknown category %q"
	ErrMsgUnknownSize            = "Unknown size %q"
	ErrMsgNameRequired           = "Name is required"
	ErrMsgBeveragePriceRequired  = "Price is required for beverages"
	ErrMsgSizePriceRequired      = "%s price is required"
	ErrMsgNegativePrice          = "Price cannot be negative"
	ErrMsgToppingQuantity        = "Topping quantity must be at least 1"
	ErrMsgDuplicateTopping       = "Topping %d selected more than once"
	ErrMsgToppingUnavailable     = "Topping %q is not available"
	ErrMsgToppingNegativePrice   = "Topping %q has a negative price"
	ErrMsgPizzaRecordNotPizza    = "Item %d is not a pizza"
	ErrMsgUnsupportedMenuVariant = "Unsupported menu item"
)
