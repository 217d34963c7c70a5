package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/vqle/catalog-service/internal/adapter/handler"
	"github.com/vqle/catalog-service/internal/adapter/handler/pb"
	"github.com/vqle/catalog-service/internal/adapter/messaging"
	"github.com/vqle/catalog-service/internal/adapter/storage"
	"github.com/vqle/catalog-service/internal/core/service"
)

const (
	notifierQueueSize = 10000
	notifierWorkers   = 10
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	httpAddr := getenv("HTTP_ADDR", ":8080")
	grpcAddr := getenv("GRPC_ADDR", ":50051")
	mysqlDSN := getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/catalog?parseTime=true")
	redisAddr := getenv("REDIS_ADDR", "localhost:6379")
	kafkaBrokers := strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaTopic := getenv("KAFKA_TOPIC", "orders.created")
	migrationsPath := getenv("MIGRATIONS_PATH", "file://migrations")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// MySQL
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Error("failed to open mysql", "err", err)
		os.Exit(1)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Error("failed to ping mysql", "err", err)
		os.Exit(1)
	}
	log.Info("connected to mysql")

	if err := runMigrations(migrationsPath, mysqlDSN); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error("failed to connect redis", "err", err)
		os.Exit(1)
	}
	log.Info("connected to redis")

	// Adapters
	redisAdapter := storage.NewRedisAdapter(rdb)
	mysqlAdapter := storage.NewMySQLAdapter(db)
	publisher := messaging.NewKafkaPublisher(kafkaBrokers, kafkaTopic)

	// Warm the stock gate from committed state
	if err := seedStockGate(ctx, db, redisAdapter); err != nil {
		log.Error("failed to seed stock gate", "err", err)
		os.Exit(1)
	}

	// Services
	notifier := service.NewNotifier(publisher, log, notifierQueueSize)
	notifier.Start(notifierWorkers)
	log.Info("started notifier workers", "count", notifierWorkers)

	orderService := service.NewOrderService(mysqlAdapter, redisAdapter, notifier, log)
	catalogService := service.NewCatalogService(mysqlAdapter, redisAdapter, log)

	// gRPC server
	grpcServer := grpc.NewServer()
	pb.RegisterCatalogServiceServer(grpcServer, handler.NewGRPCHandler(orderService))

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Error("failed to listen", "addr", grpcAddr, "err", err)
		os.Exit(1)
	}

	go func() {
		log.Info("gRPC server listening", "addr", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server error", "err", err)
		}
	}()

	// HTTP server
	httpHandler := handler.NewHTTPHandler(orderService, catalogService, log)
	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: httpHandler.Routes(),
	}

	go func() {
		log.Info("HTTP server listening", "addr", httpAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "err", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	// Drain pending notifications before closing the sink
	notifier.Close()
	publisher.Close()
	log.Info("notifier stopped")

	rdb.Close()
	db.Close()
	log.Info("connections closed")
}

func runMigrations(sourceURL, dsn string) error {
	m, err := migrate.New(sourceURL, "mysql://"+dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// seedStockGate mirrors committed stock into Redis so the admission gate can
// shed sold-out requests before they reach MySQL.
func seedStockGate(ctx context.Context, db *sql.DB, cache *storage.RedisAdapter) error {
	rows, err := db.QueryContext(ctx, `SELECT id, stock FROM products`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var stock int
		if err := rows.Scan(&id, &stock); err != nil {
			return err
		}
		if err := cache.SetStock(ctx, id, stock); err != nil {
			return err
		}
	}
	return rows.Err()
}
