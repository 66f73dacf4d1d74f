package pos

import "github.com/google/uuid"

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "pizzapos" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// OrderRoot computes the idempotency key sent with an order placement.
// The same order number always yields the same key.
func OrderRoot(orderNo string) uuid.UUID {
	return ComputeRoot("order", orderNo)
}

// NewLineID returns a fresh random identifier for a cart line.
func NewLineID() string {
	return uuid.NewString()
}
