package port

import (
	"context"

	"github.com/vqle/catalog-service/internal/core/domain"
)

type EventPublisher interface {
	// Publish delivers an OrderCreated event to the outbound sink
	Publish(ctx context.Context, event domain.OrderCreated) error
}
