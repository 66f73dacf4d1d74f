package pos

import "github.com/shopspring/decimal"

// RequireNotEmpty checks that a string field is set.
func RequireNotEmpty(field, errMsg string) *CommandError {
	if field == "" {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequirePositive checks that a value is greater than zero.
func RequirePositive(value int, errMsg string) *CommandError {
	if value <= 0 {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireNonNegativeAmount checks that a money amount is zero or greater.
func RequireNonNegativeAmount(value decimal.Decimal, errMsg string) *CommandError {
	if value.IsNegative() {
		return NewInvalidArgument(errMsg)
	}
	return nil
}

// RequireAvailable checks an availability flag.
func RequireAvailable(available bool, errMsg string) *CommandError {
	if !available {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}

// RequireItems checks that a slice has at least one element.
func RequireItems[T any](items []T, errMsg string) *CommandError {
	if len(items) == 0 {
		return NewFailedPrecondition(errMsg)
	}
	return nil
}
