package terminal

import "github.com/cockroachdb/errors"

// Error message constants for the terminal.
const (
	ErrMsgMenuNotLoaded     = "Menu is not loaded; refresh first"
	ErrMsgPizzaNotOnMenu    = "Pizza %d is not on the menu"
	ErrMsgBeverageNotOnMenu = "Beverage %d is not on the menu"
	ErrMsgToppingNotOnMenu  = "Topping %d is not on the menu"
	ErrMsgOrderInFlight     = "An order is being placed"
	ErrMsgNoOrderNumber     = "No order number yet; refresh first"
)

var (
	// ErrStopped is returned once Run has exited.
	ErrStopped = errors.New("terminal stopped")
	// ErrAlreadyRunning is returned by a second call to Run.
	ErrAlreadyRunning = errors.New("terminal already running")
)
