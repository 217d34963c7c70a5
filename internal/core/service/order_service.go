package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/core/validation"
	"github.com/vqle/catalog-service/internal/port"
)

const (
	idempotencyKeyPrefix = "order:req:"

	// maxCreateAttempts bounds regenerate-and-retry on an order_no collision.
	maxCreateAttempts = 3
)

type OrderResult struct {
	Success bool
	OrderNo string
	Message string
}

// OrderService coordinates the reservation workflow: validate, admit through
// the cache gate, then create the order and decrement stock in one database
// transaction. Stock is never decremented without a matching order.
type OrderService struct {
	repo     port.DatabaseRepository
	cache    port.CacheRepository
	notifier *Notifier
	orderNos *OrderNumberGenerator
	log      *slog.Logger
}

func NewOrderService(repo port.DatabaseRepository, cache port.CacheRepository, notifier *Notifier, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:     repo,
		cache:    cache,
		notifier: notifier,
		orderNos: NewOrderNumberGenerator(),
		log:      log,
	}
}

// SubmitOrder runs one submission attempt. requestID is optional; when the
// transport supplies one, a repeated submission with the same ID fails as a
// conflict instead of reserving twice. Only a committed order consumes the
// ID, so a rejected or failed attempt can be retried with it. Without an ID
// every call is a fresh attempt.
func (s *OrderService) SubmitOrder(ctx context.Context, productID string, quantity int, requestID string) (result OrderResult, submitErr error) {
	if violations := validation.ValidateOrderRequest(productID, quantity); len(violations) > 0 {
		return OrderResult{}, domain.NewValidation(violations)
	}

	if requestID != "" {
		ok, err := s.cache.SetIdempotency(ctx, idempotencyKeyPrefix+requestID)
		if err != nil {
			return OrderResult{}, domain.NewUnavailable("idempotency check failed")
		}
		if !ok {
			return OrderResult{}, domain.NewConflict("duplicate request")
		}
		defer func() {
			if submitErr != nil {
				s.releaseRequestID(ctx, requestID)
			}
		}()
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil {
		return OrderResult{}, domain.NewUnavailable("product lookup failed")
	}
	if product == nil {
		return OrderResult{}, domain.NewNotFound(productID)
	}

	// Cache gate: sheds requests the mirror already knows are doomed. The
	// database transaction below is the decision of record, so a cache
	// fault degrades to pass-through rather than failing the submission.
	gate, err := s.cache.DecrementStock(ctx, productID, quantity)
	if err != nil {
		s.log.Warn("stock gate unavailable, falling through", "product_id", productID, "err", err)
		gate = port.GateUnknown
	}
	if gate == port.GateInsufficient {
		return OrderResult{}, domain.NewInsufficientStock(product.Stock)
	}
	gateHeld := gate == port.GatePass

	order := domain.NewOrder(uuid.NewString(), s.orderNos.Next(), *product, quantity)

	for attempt := 0; ; attempt++ {
		err = s.repo.CreateOrder(ctx, order)
		if err == nil {
			break
		}

		if errors.Is(err, port.ErrInsufficientStock) {
			s.releaseGate(ctx, productID, quantity, gateHeld)
			return OrderResult{}, domain.NewInsufficientStock(s.observedStock(ctx, productID))
		}

		if errors.Is(err, port.ErrDuplicateOrderNo) {
			if attempt+1 < maxCreateAttempts {
				order.OrderNo = s.orderNos.Next()
				continue
			}
			s.releaseGate(ctx, productID, quantity, gateHeld)
			return OrderResult{}, domain.NewConflict("order number conflict, please retry")
		}

		s.log.Error("order create failed", "product_id", productID, "order_no", order.OrderNo, "err", err)
		s.releaseGate(ctx, productID, quantity, gateHeld)
		return OrderResult{}, domain.NewUnavailable("order storage unavailable")
	}

	// Committed: notification is fire-and-forget from here on.
	s.notifier.Enqueue(domain.NewOrderCreated(order))

	return OrderResult{
		Success: true,
		OrderNo: order.OrderNo,
		Message: fmt.Sprintf("Order %s created successfully", order.OrderNo),
	}, nil
}

// GetOrder returns a committed order by its number.
func (s *OrderService) GetOrder(ctx context.Context, orderNo string) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderNo)
	if err != nil {
		return nil, domain.NewUnavailable("order lookup failed")
	}
	if order == nil {
		return nil, &domain.Error{Kind: domain.KindNotFound, Message: fmt.Sprintf("order %s not found", orderNo)}
	}
	return order, nil
}

// releaseGate restores the mirrored counter after a failed transaction. The
// mirror is admission control, not the ledger; a failed restore only makes
// the gate pessimistic.
func (s *OrderService) releaseGate(ctx context.Context, productID string, quantity int, held bool) {
	if !held {
		return
	}
	if err := s.cache.IncrementStock(ctx, productID, quantity); err != nil {
		s.log.Error("stock gate restore failed", "product_id", productID, "quantity", quantity, "err", err)
	}
}

// releaseRequestID frees a claimed idempotency key after a failed attempt so
// the caller's retry with the same request ID is not rejected as a duplicate.
func (s *OrderService) releaseRequestID(ctx context.Context, requestID string) {
	if err := s.cache.DeleteIdempotency(ctx, idempotencyKeyPrefix+requestID); err != nil {
		s.log.Warn("request id release failed", "request_id", requestID, "err", err)
	}
}

// observedStock reads committed stock for the insufficient-stock message.
func (s *OrderService) observedStock(ctx context.Context, productID string) int {
	product, err := s.repo.GetProduct(ctx, productID)
	if err != nil || product == nil {
		return 0
	}
	return product.Stock
}
