package pos

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRequireNotEmpty(t *testing.T) {
	if err := RequireNotEmpty("", "Name is required"); err == nil || err.Code != StatusInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
	if err := RequireNotEmpty("Margherita", "Name is required"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestRequirePositive(t *testing.T) {
	for _, v := range []int{0, -1} {
		if RequirePositive(v, "must be positive") == nil {
			t.Errorf("expected error for %d", v)
		}
	}
	if RequirePositive(1, "must be positive") != nil {
		t.Error("expected nil for 1")
	}
}

func TestRequireNonNegativeAmount(t *testing.T) {
	if RequireNonNegativeAmount(decimal.NewFromInt(-1), "negative") == nil {
		t.Error("expected error for negative amount")
	}
	if RequireNonNegativeAmount(decimal.Zero, "negative") != nil {
		t.Error("zero is allowed")
	}
}

func TestRequireAvailable(t *testing.T) {
	err := RequireAvailable(false, "Item is not available")
	if err == nil || err.Code != StatusFailedPrecondition {
		t.Errorf("expected FAILED_PRECONDITION, got %v", err)
	}
	if RequireAvailable(true, "Item is not available") != nil {
		t.Error("expected nil")
	}
}

func TestRequireItems(t *testing.T) {
	if RequireItems([]int{}, "Cart is empty") == nil {
		t.Error("expected error for empty slice")
	}
	if RequireItems([]string{"a"}, "Cart is empty") != nil {
		t.Error("expected nil")
	}
}
