package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vqle/catalog-service/internal/port"
)

const (
	stockKeyPrefix    = "stock:"
	idempotencyKeyTTL = 24 * time.Hour
)

// decrementStockScript decrements the mirrored counter only when it covers
// the requested quantity. A missing key is not a rejection: the product is
// simply not mirrored and the database decides.
var decrementStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

local current = redis.call('GET', key)
if not current then
	return -1
end

current = tonumber(current)
if current >= quantity then
	redis.call('DECRBY', key, quantity)
	return 1
end

return 0
`)

// incrementStockScript restores the counter only for mirrored products, so a
// restore can never conjure a mirror entry out of nothing.
var incrementStockScript = redis.NewScript(`
local key = KEYS[1]
local quantity = tonumber(ARGV[1])

if redis.call('EXISTS', key) == 0 then
	return 0
end

return redis.call('INCRBY', key, quantity)
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) DecrementStock(ctx context.Context, productID string, quantity int) (port.GateResult, error) {
	key := stockKeyPrefix + productID

	result, err := decrementStockScript.Run(ctx, r.client, []string{key}, quantity).Int()
	if err != nil {
		return port.GateUnknown, err
	}

	switch result {
	case 1:
		return port.GatePass, nil
	case 0:
		return port.GateInsufficient, nil
	default:
		return port.GateUnknown, nil
	}
}

func (r *RedisAdapter) IncrementStock(ctx context.Context, productID string, quantity int) error {
	key := stockKeyPrefix + productID
	return incrementStockScript.Run(ctx, r.client, []string{key}, quantity).Err()
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (r *RedisAdapter) DeleteIdempotency(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SetStock seeds or refreshes the mirror for a product, from committed
// database state at startup and again whenever maintenance changes stock.
func (r *RedisAdapter) SetStock(ctx context.Context, productID string, quantity int) error {
	key := stockKeyPrefix + productID
	return r.client.Set(ctx, key, quantity, 0).Err()
}
