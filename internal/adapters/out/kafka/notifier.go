package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// statusChangedEvent is the wire format published to the order status topic.
type statusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderKind   string    `json:"order_kind"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderStatusNotifier publishes order status changes to Kafka.
// Publish failures are logged and swallowed: status events are advisory
// and must never fail the command that produced them.
type OrderStatusNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderStatusNotifier creates a notifier writing to the given topic.
func NewOrderStatusNotifier(brokers []string, topic string, logger *slog.Logger) *OrderStatusNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}

	return &OrderStatusNotifier{
		writer: writer,
		logger: logger.With("component", "order_status_notifier"),
	}
}

var _ ports.OrderStatusNotifier = &OrderStatusNotifier{}

// NotifyStatusChanged publishes a status change event keyed by order ID,
// so all events for one order land on the same partition in order.
func (n *OrderStatusNotifier) NotifyStatusChanged(ctx context.Context, ref kernel.OrderRef, orderNumber string, status string) error {
	event := statusChangedEvent{
		OrderID:     ref.ID().String(),
		OrderKind:   ref.Kind().String(),
		OrderNumber: orderNumber,
		Status:      status,
		OccurredAt:  time.Now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		n.logger.ErrorContext(ctx, "Failed to marshal status event", "order_number", orderNumber, "error", err)
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(ref.ID().String()),
		Value: value,
		Time:  event.OccurredAt,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		n.logger.ErrorContext(ctx, "Failed to publish status event",
			"order_number", orderNumber, "status", status, "error", err)
		return nil
	}

	n.logger.InfoContext(ctx, "Published status event", "order_number", orderNumber, "status", status)
	return nil
}

// Close flushes and closes the underlying writer.
func (n *OrderStatusNotifier) Close() error {
	return n.writer.Close()
}
