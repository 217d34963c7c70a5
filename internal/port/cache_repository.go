package port

import "context"

// GateResult is the outcome of the cache-side stock admission check.
type GateResult int

const (
	// GatePass: the mirror had enough stock and was decremented.
	GatePass GateResult = iota
	// GateInsufficient: the mirror says the product is sold out for this quantity.
	GateInsufficient
	// GateUnknown: the product is not mirrored; the database decides.
	GateUnknown
)

type CacheRepository interface {
	// DecrementStock atomically decreases the mirrored stock counter
	DecrementStock(ctx context.Context, productID string, quantity int) (GateResult, error)

	// IncrementStock restores the mirrored counter after a failed commit
	IncrementStock(ctx context.Context, productID string, quantity int) error

	// SetStock seeds or refreshes the mirrored counter from committed stock
	SetStock(ctx context.Context, productID string, quantity int) error

	// SetIdempotency sets a key for idempotency check, returns false if already exists
	SetIdempotency(ctx context.Context, key string) (bool, error)

	// DeleteIdempotency releases a previously set idempotency key
	DeleteIdempotency(ctx context.Context, key string) error
}
