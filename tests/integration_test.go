package tests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vqle/catalog-service/internal/adapter/storage"
	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/service"
)

type testEnv struct {
	mysql   *sql.DB
	redis   *redis.Client
	db      *storage.MySQLAdapter
	cache   *storage.RedisAdapter
	orders  *service.OrderService
	cleanup func()
}

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, event domain.OrderCreated) error { return nil }

func setupTestEnv(t *testing.T) *testEnv {
	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/catalog?parseTime=true"
	}
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	notifier := service.NewNotifier(nopPublisher{}, log, 1000)
	notifier.Start(2)

	return &testEnv{
		mysql:  db,
		redis:  rdb,
		db:     mysqlAdapter,
		cache:  redisAdapter,
		orders: service.NewOrderService(mysqlAdapter, redisAdapter, notifier, log),
		cleanup: func() {
			notifier.Close()
			rdb.Close()
			db.Close()
		},
	}
}

// seedProduct writes a fresh product and mirrors its stock into the gate.
func (e *testEnv) seedProduct(t *testing.T, priceCents int64, stock int) string {
	t.Helper()
	ctx := context.Background()

	productID := "it-" + uuid.NewString()[:8]
	title := "Integration Product"
	currency := "USD"
	err := e.db.UpsertProduct(ctx, domain.ProductMutation{
		ID: productID, Title: &title, PriceCents: &priceCents, Currency: &currency, Stock: &stock,
	})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if err := e.cache.SetStock(ctx, productID, stock); err != nil {
		t.Fatalf("seed gate: %v", err)
	}
	return productID
}

func (e *testEnv) dbStock(t *testing.T, productID string) int {
	t.Helper()
	var stock int
	if err := e.mysql.QueryRow(`SELECT stock FROM products WHERE id = ?`, productID).Scan(&stock); err != nil {
		t.Fatalf("query stock: %v", err)
	}
	return stock
}

func (e *testEnv) orderRows(t *testing.T, productID string) int {
	t.Helper()
	var count int
	if err := e.mysql.QueryRow(`SELECT COUNT(*) FROM order_items WHERE product_id = ?`, productID).Scan(&count); err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return count
}

func TestSubmitOrder_EndToEnd(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	productID := env.seedProduct(t, 1500, 5)

	result, err := env.orders.SubmitOrder(ctx, productID, 3, "")
	if err != nil {
		t.Fatalf("submission failed: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success")
	}

	if stock := env.dbStock(t, productID); stock != 2 {
		t.Errorf("expected stock 2, got %d", stock)
	}

	order, err := env.orders.GetOrder(ctx, result.OrderNo)
	if err != nil {
		t.Fatalf("order not retrievable: %v", err)
	}
	if order.Status != domain.OrderStatusConfirmed || order.TotalCents != 4500 {
		t.Errorf("unexpected order: %+v", order)
	}

	// Second submission for more than the remaining stock
	_, err = env.orders.SubmitOrder(ctx, productID, 3, "")
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindInsufficientStock {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	if de.Available != 2 {
		t.Errorf("expected available 2, got %d", de.Available)
	}
	if stock := env.dbStock(t, productID); stock != 2 {
		t.Errorf("failed submission changed stock: %d", stock)
	}
}

func TestSubmitOrder_ConcurrentContention(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	const initialStock = 5
	const totalRequests = 10
	productID := env.seedProduct(t, 1000, initialStock)

	var successCount atomic.Int32
	var soldOutCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := env.orders.SubmitOrder(ctx, productID, 1, fmt.Sprintf("it-%s-%d", productID, id))
			if err == nil {
				successCount.Add(1)
				return
			}
			var de *domain.Error
			if errors.As(err, &de) && de.Kind == domain.KindInsufficientStock {
				soldOutCount.Add(1)
			} else {
				t.Errorf("unexpected failure kind: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != initialStock {
		t.Errorf("expected %d successes, got %d", initialStock, successCount.Load())
	}
	if soldOutCount.Load() != totalRequests-initialStock {
		t.Errorf("expected %d sold-out, got %d", totalRequests-initialStock, soldOutCount.Load())
	}

	// Final stock is initial minus the committed reservations, and every
	// committed reservation has a matching order row.
	if stock := env.dbStock(t, productID); stock != 0 {
		t.Errorf("expected final stock 0, got %d", stock)
	}
	if rows := env.orderRows(t, productID); rows != initialStock {
		t.Errorf("expected %d order rows, got %d", initialStock, rows)
	}
}

func TestSubmitOrder_IdempotencyKey(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	productID := env.seedProduct(t, 1000, 5)
	requestID := "it-idem-" + uuid.NewString()

	if _, err := env.orders.SubmitOrder(ctx, productID, 1, requestID); err != nil {
		t.Fatalf("first submission failed: %v", err)
	}

	_, err := env.orders.SubmitOrder(ctx, productID, 1, requestID)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindConflict {
		t.Fatalf("expected conflict on duplicate request, got %v", err)
	}
	if stock := env.dbStock(t, productID); stock != 4 {
		t.Errorf("duplicate request reserved stock twice: %d", stock)
	}
}

func TestRestock_ReopensAdmissionGate(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	productID := env.seedProduct(t, 1000, 2)

	if _, err := env.orders.SubmitOrder(ctx, productID, 2, ""); err != nil {
		t.Fatalf("depleting submission failed: %v", err)
	}
	_, err := env.orders.SubmitOrder(ctx, productID, 1, "")
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindInsufficientStock {
		t.Fatalf("expected insufficient stock when depleted, got %v", err)
	}

	// Restock through the maintenance path, which must refresh the gate.
	catalog := service.NewCatalogService(env.db, env.cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
	stock := 5
	if err := catalog.UpsertProduct(ctx, domain.ProductMutation{ID: productID, Stock: &stock}); err != nil {
		t.Fatalf("restock failed: %v", err)
	}

	result, err := env.orders.SubmitOrder(ctx, productID, 3, "")
	if err != nil {
		t.Fatalf("submission after restock failed: %v", err)
	}
	if !result.Success {
		t.Fatal("expected success after restock")
	}
	if stock := env.dbStock(t, productID); stock != 2 {
		t.Errorf("expected stock 2 after restocked sale, got %d", stock)
	}
}

func TestSearchProducts_SeesOnlyCommittedState(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()
	ctx := context.Background()

	productID := env.seedProduct(t, 1000, 10)

	// Concurrent submissions while searching: every observed stock level
	// must be explainable by committed orders alone.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 5; i++ {
			env.orders.SubmitOrder(ctx, productID, 1, "")
		}
	}()

	for i := 0; i < 20; i++ {
		products, err := env.db.SearchProducts(ctx, domain.SearchFilters{Query: "Integration"})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		for _, p := range products {
			if p.ID != productID {
				continue
			}
			committed := env.orderRows(t, productID)
			// Orders can commit between the two reads, so committed may
			// run ahead of the observed stock, never behind.
			if reserved := 10 - p.Stock; committed < reserved {
				t.Errorf("observed stock %d implies %d reservations but only %d orders committed",
					p.Stock, reserved, committed)
			}
		}
	}
	<-done

	if stock := env.dbStock(t, productID); stock != 5 {
		t.Errorf("expected final stock 5, got %d", stock)
	}
}
