package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vqle/catalog-service/internal/core/domain"
	"github.com/vqle/catalog-service/internal/port"
)

const publishTimeout = 5 * time.Second

// Notifier delivers OrderCreated events to the outbound sink, best-effort.
// Events are handed off through a buffered queue so the submitting caller
// never waits on the sink; delivery failures are logged and dropped, they
// never affect the committed order.
type Notifier struct {
	publisher port.EventPublisher
	queue     chan domain.OrderCreated
	log       *slog.Logger
	wg        sync.WaitGroup
}

func NewNotifier(publisher port.EventPublisher, log *slog.Logger, queueSize int) *Notifier {
	return &Notifier{
		publisher: publisher,
		queue:     make(chan domain.OrderCreated, queueSize),
		log:       log,
	}
}

// Start launches the worker pool draining the queue.
func (n *Notifier) Start(workers int) {
	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go func(id int) {
			defer n.wg.Done()
			n.workerLoop(id)
		}(i)
	}
}

func (n *Notifier) workerLoop(id int) {
	for event := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)

		if err := n.publisher.Publish(ctx, event); err != nil {
			n.log.Error("event publish failed",
				"worker", id, "order_no", event.OrderNo, "err", err)
		} else {
			n.log.Info("event published",
				"worker", id, "order_no", event.OrderNo)
		}

		cancel()
	}
}

// Enqueue hands an event to the workers without blocking. A full queue drops
// the event with a log line; the order itself is already committed.
func (n *Notifier) Enqueue(event domain.OrderCreated) {
	select {
	case n.queue <- event:
	default:
		n.log.Error("notifier queue full, dropping event", "order_no", event.OrderNo)
	}
}

// Close stops intake and waits for in-flight publishes to finish.
func (n *Notifier) Close() {
	close(n.queue)
	n.wg.Wait()
}
