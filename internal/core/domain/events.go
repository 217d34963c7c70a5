package domain

// OrderCreated is published once per committed order, after commit.
type OrderCreated struct {
	OrderID    string `json:"order_id"`
	OrderNo    string `json:"order_no"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	TotalCents int64  `json:"total_cents"`
	Currency   string `json:"currency"`
}

// NewOrderCreated derives the event payload from a committed single-item order.
func NewOrderCreated(o Order) OrderCreated {
	ev := OrderCreated{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		TotalCents: o.TotalCents,
		Currency:   o.Currency,
	}
	if len(o.Items) > 0 {
		ev.ProductID = o.Items[0].ProductID
		ev.Quantity = o.Items[0].Quantity
	}
	return ev
}
