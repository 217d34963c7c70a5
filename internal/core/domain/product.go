package domain

import "time"

type Product struct {
	ID         string
	Title      string
	Genre      string
	PriceCents int64
	Currency   string
	Stock      int
	Version    int // optimistic locking
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StockStatus is a human-readable label derived from the current stock level.
func (p Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return "Out of Stock"
	case p.Stock < 10:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// Discount returns a promotional tag for overstocked products, empty otherwise.
func (p Product) Discount() string {
	if p.Stock > 100 {
		return "10%"
	}
	return ""
}

// ProductMutation is a candidate create/update of a catalog entry. Nil fields
// are absent from the mutation and are not validated or written.
type ProductMutation struct {
	ID         string
	Title      *string
	Genre      *string
	PriceCents *int64
	Currency   *string
	Stock      *int
}

// SearchFilters narrows a product search. Zero values mean "no filter".
type SearchFilters struct {
	Query         string
	Genre         string
	MaxPriceCents int64
}
