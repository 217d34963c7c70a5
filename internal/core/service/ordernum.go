package service

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// OrderNumberGenerator issues process-unique order numbers. A wall-clock
// scheme collides once two submissions land in the same tick, so numbers
// combine a per-process shard with a monotonic counter. The database keeps a
// unique index on order_no as the cross-process backstop.
type OrderNumberGenerator struct {
	shard string
	seq   atomic.Uint64
}

func NewOrderNumberGenerator() *OrderNumberGenerator {
	return &OrderNumberGenerator{shard: uuid.NewString()[:8]}
}

func (g *OrderNumberGenerator) Next() string {
	return fmt.Sprintf("ORD-%s-%06d", g.shard, g.seq.Add(1))
}
