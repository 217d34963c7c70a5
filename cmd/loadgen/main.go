// loadgen drives concurrent submissions against a live MySQL + Redis pair and
// checks that contention never oversells. Dev tool, not part of the service.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/vqle/catalog-service/internal/adapter/storage"
	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/service"
)

const (
	productID     = "loadgen-item"
	initialStock  = 20
	totalRequests = 50
	queueSize     = 100
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, event domain.OrderCreated) error { return nil }

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := sql.Open("mysql", getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/catalog?parseTime=true"))
	if err != nil {
		log.Error("failed to open mysql", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Error("failed to ping mysql", "err", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{Addr: getenv("REDIS_ADDR", "localhost:6379")})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect redis", "err", err)
		os.Exit(1)
	}
	defer rdb.Close()

	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	// Reset the product and its gate mirror
	title := "Loadgen Item"
	price := int64(1000)
	stock := initialStock
	currency := "USD"
	err = mysqlAdapter.UpsertProduct(ctx, domain.ProductMutation{
		ID: productID, Title: &title, PriceCents: &price, Currency: &currency, Stock: &stock,
	})
	if err != nil {
		log.Error("failed to seed product", "err", err)
		os.Exit(1)
	}
	if err := redisAdapter.SetStock(ctx, productID, initialStock); err != nil {
		log.Error("failed to seed gate", "err", err)
		os.Exit(1)
	}

	notifier := service.NewNotifier(nopPublisher{}, log, queueSize)
	notifier.Start(2)
	defer notifier.Close()

	orderService := service.NewOrderService(mysqlAdapter, redisAdapter, notifier, log)

	var successCount atomic.Int32
	var soldOutCount atomic.Int32
	var otherCount atomic.Int32

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			_, err := orderService.SubmitOrder(ctx, productID, 1, fmt.Sprintf("loadgen-%d-%d", start.UnixNano(), id))
			if err == nil {
				successCount.Add(1)
				return
			}
			var de *domain.Error
			if errors.As(err, &de) && de.Kind == domain.KindInsufficientStock {
				soldOutCount.Add(1)
			} else {
				otherCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	success := successCount.Load()
	soldOut := soldOutCount.Load()

	fmt.Println("========== LOAD TEST RESULTS ==========")
	fmt.Printf("Initial Stock:    %d\n", initialStock)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Sold Out:         %d\n", soldOut)
	fmt.Printf("Other Failures:   %d\n", otherCount.Load())
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("=======================================")

	if success == initialStock && soldOut == totalRequests-initialStock {
		fmt.Printf("PASS: exactly %d orders succeeded, %d rejected\n", initialStock, totalRequests-initialStock)
	} else {
		fmt.Printf("FAIL: expected %d/%d, got %d/%d\n",
			initialStock, totalRequests-initialStock, success, soldOut)
	}

	product, err := mysqlAdapter.GetProduct(ctx, productID)
	if err != nil || product == nil {
		log.Error("failed to read final stock", "err", err)
		os.Exit(1)
	}
	fmt.Printf("Final DB Stock: %d\n", product.Stock)

	if product.Stock == 0 {
		fmt.Println("PASS: stock depleted to 0")
	} else {
		fmt.Printf("FAIL: expected stock 0, got %d\n", product.Stock)
	}
}
