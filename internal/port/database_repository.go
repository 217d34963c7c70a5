package port

import (
	"context"
	"errors"

	"github.com/vqle/catalog-service/internal/core/domain"
)

var (
	// ErrInsufficientStock means the conditional decrement matched no row:
	// the product's stock was below the requested quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateOrderNo means the order insert hit the unique order_no
	// constraint; the caller may retry with a fresh number.
	ErrDuplicateOrderNo = errors.New("duplicate order number")
)

type DatabaseRepository interface {
	// GetProduct retrieves a product by ID, nil when absent
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// SearchProducts returns committed products matching the filters
	SearchProducts(ctx context.Context, filters domain.SearchFilters) ([]domain.Product, error)

	// UpsertProduct creates or updates a catalog entry from a validated mutation
	UpsertProduct(ctx context.Context, m domain.ProductMutation) error

	// CreateOrder persists the order and decrements stock in a single
	// transaction; the decrement succeeds only if stock is sufficient
	CreateOrder(ctx context.Context, order domain.Order) error

	// GetOrder retrieves an order with its items by order number, nil when absent
	GetOrder(ctx context.Context, orderNo string) (*domain.Order, error)
}
