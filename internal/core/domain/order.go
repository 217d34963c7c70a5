package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusRejected  OrderStatus = "rejected"
)

type Order struct {
	ID         string
	OrderNo    string
	Status     OrderStatus
	TotalCents int64
	Currency   string
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItem struct {
	ProductID      string
	Quantity       int
	UnitPriceCents int64
}

// NewOrder builds a confirmed single-item order priced at the product's
// current unit price. The total is fixed at order time.
func NewOrder(id, orderNo string, product Product, quantity int) Order {
	now := time.Now().UTC()
	return Order{
		ID:         id,
		OrderNo:    orderNo,
		Status:     OrderStatusConfirmed,
		TotalCents: int64(quantity) * product.PriceCents,
		Currency:   product.Currency,
		Items: []OrderItem{{
			ProductID:      product.ID,
			Quantity:       quantity,
			UnitPriceCents: product.PriceCents,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
