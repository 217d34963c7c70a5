package storage

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vqle/catalog-service/internal/port"
)

func setupTestRedis(t *testing.T) (*RedisAdapter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisAdapter(client), mr
}

func TestDecrementStock_Pass(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetStock(ctx, "book-1", 10))

	result, err := adapter.DecrementStock(ctx, "book-1", 3)
	require.NoError(t, err)
	assert.Equal(t, port.GatePass, result)

	raw, err := mr.Get("stock:book-1")
	require.NoError(t, err)
	stock, err := strconv.Atoi(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, stock)
}

func TestDecrementStock_Insufficient(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetStock(ctx, "book-1", 2))

	result, err := adapter.DecrementStock(ctx, "book-1", 3)
	require.NoError(t, err)
	assert.Equal(t, port.GateInsufficient, result)

	// A rejected decrement leaves the counter untouched.
	raw, _ := mr.Get("stock:book-1")
	stock, _ := strconv.Atoi(raw)
	assert.Equal(t, 2, stock)
}

func TestDecrementStock_UnknownProduct(t *testing.T) {
	adapter, _ := setupTestRedis(t)

	result, err := adapter.DecrementStock(context.Background(), "not-mirrored", 1)
	require.NoError(t, err)
	assert.Equal(t, port.GateUnknown, result)
}

func TestDecrementStock_ExactDepletion(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetStock(ctx, "book-1", 5))

	result, err := adapter.DecrementStock(ctx, "book-1", 5)
	require.NoError(t, err)
	assert.Equal(t, port.GatePass, result)

	raw, _ := mr.Get("stock:book-1")
	stock, _ := strconv.Atoi(raw)
	assert.Equal(t, 0, stock)

	result, err = adapter.DecrementStock(ctx, "book-1", 1)
	require.NoError(t, err)
	assert.Equal(t, port.GateInsufficient, result)
}

func TestDecrementStock_ConcurrentNeverOversells(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	const initialStock = 20
	const totalRequests = 50
	require.NoError(t, adapter.SetStock(ctx, "book-1", initialStock))

	var passed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := adapter.DecrementStock(ctx, "book-1", 1)
			if err == nil && result == port.GatePass {
				passed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(initialStock), passed.Load())

	raw, _ := mr.Get("stock:book-1")
	stock, _ := strconv.Atoi(raw)
	assert.Equal(t, 0, stock)
}

func TestIncrementStock_RestoresMirroredCounter(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetStock(ctx, "book-1", 10))

	_, err := adapter.DecrementStock(ctx, "book-1", 4)
	require.NoError(t, err)
	require.NoError(t, adapter.IncrementStock(ctx, "book-1", 4))

	raw, _ := mr.Get("stock:book-1")
	stock, _ := strconv.Atoi(raw)
	assert.Equal(t, 10, stock)
}

func TestIncrementStock_IgnoresUnmirroredProduct(t *testing.T) {
	adapter, mr := setupTestRedis(t)

	require.NoError(t, adapter.IncrementStock(context.Background(), "not-mirrored", 3))
	assert.False(t, mr.Exists("stock:not-mirrored"))
}

func TestSetIdempotency(t *testing.T) {
	adapter, _ := setupTestRedis(t)
	ctx := context.Background()

	ok, err := adapter.SetIdempotency(ctx, "order:req:abc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = adapter.SetIdempotency(ctx, "order:req:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = adapter.SetIdempotency(ctx, "order:req:def")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDeleteIdempotency_FreesKey(t *testing.T) {
	adapter, _ := setupTestRedis(t)
	ctx := context.Background()

	ok, err := adapter.SetIdempotency(ctx, "order:req:abc")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, adapter.DeleteIdempotency(ctx, "order:req:abc"))

	ok, err = adapter.SetIdempotency(ctx, "order:req:abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetStock_RefreshesDepletedMirror(t *testing.T) {
	adapter, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.SetStock(ctx, "book-1", 2))
	_, err := adapter.DecrementStock(ctx, "book-1", 2)
	require.NoError(t, err)

	result, err := adapter.DecrementStock(ctx, "book-1", 1)
	require.NoError(t, err)
	require.Equal(t, port.GateInsufficient, result)

	// Restock: the mirror must admit again.
	require.NoError(t, adapter.SetStock(ctx, "book-1", 5))

	result, err = adapter.DecrementStock(ctx, "book-1", 3)
	require.NoError(t, err)
	assert.Equal(t, port.GatePass, result)

	raw, _ := mr.Get("stock:book-1")
	stock, _ := strconv.Atoi(raw)
	assert.Equal(t, 2, stock)
}
