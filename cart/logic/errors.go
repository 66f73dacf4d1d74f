package logic

// Error message constants for the cart domain.
const (
	ErrMsgItemNotInCart    = "Item not in cart"
	ErrMsgInvalidQuantity  = "Quantity must be at least 1"
	ErrMsgCartEmpty        = "Cart is empty"
	ErrMsgOrderNoRequired  = "Order number is required"
	ErrMsgMenuItemRequired = "Menu item is required"
	ErrMsgItemUnavailable  = "%s is not available"
	ErrMsgInvalidSize      = "Unknown size %q"
	ErrMsgBeverageToppings = "Beverages cannot have toppings"
	ErrMsgBeveragePriceNeg = "Beverage price cannot be negative"
	ErrMsgUnsupportedItem  = "Unsupported menu item"
)
