// Package kafka forwards order events from the in-process hub to a Kafka
// topic for consumers outside this service.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"fastbite/internal/core/application/broadcast"
	"fastbite/internal/core/domain/model/event"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the relay uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type OrderEventSource interface {
	AllOrderEvents() (*broadcast.Subscription[event.OrderEvent], error)
}

// writerBatchTimeout bounds how long a single WriteMessages call waits for a
// batch to fill. The relay writes one message per call.
const writerBatchTimeout = 10 * time.Millisecond

// NewWriter builds a writer that keys messages by order id, so all events of
// one order land in the same partition.
func NewWriter(brokersCSV, topic string) *kafka.Writer {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: writerBatchTimeout,
	}
}

type orderChangedMessage struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status,omitempty"`
	Total     string    `json:"total,omitempty"`
	CourierID string    `json:"courierId,omitempty"`
	Version   int       `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Missed    uint64    `json:"missed,omitempty"`
}

// OrderEventRelay is a hub subscriber like any SSE client; a slow broker
// makes the relay lose events (counted in Missed) rather than stall the hub.
type OrderEventRelay struct {
	source OrderEventSource
	writer MessageWriter
	logger *slog.Logger
}

func NewOrderEventRelay(source OrderEventSource, writer MessageWriter, logger *slog.Logger) *OrderEventRelay {
	return &OrderEventRelay{
		source: source,
		writer: writer,
		logger: logger.With("component", "kafka_order_event_relay"),
	}
}

// Run forwards events until ctx is done or the hub is closed. Write failures
// are logged and the event is skipped.
func (r *OrderEventRelay) Run(ctx context.Context) error {
	sub, err := r.source.AllOrderEvents()
	if err != nil {
		return err
	}
	defer sub.Close()

	r.logger.InfoContext(ctx, "Kafka order event relay started")
	for {
		d, recvErr := sub.Receive(ctx)
		if recvErr != nil {
			if errors.Is(recvErr, broadcast.ErrSubscriptionClosed) || errors.Is(recvErr, context.Canceled) {
				r.logger.InfoContext(ctx, "Kafka order event relay stopped")
				return nil
			}
			return recvErr
		}

		if d.Missed > 0 {
			r.logger.WarnContext(ctx, "Kafka relay fell behind, events dropped", "missed", d.Missed)
		}

		msg, encErr := encode(d)
		if encErr != nil {
			r.logger.ErrorContext(ctx, "Failed to encode order event", "error", encErr)
			continue
		}

		if writeErr := r.writer.WriteMessages(ctx, msg); writeErr != nil {
			r.logger.ErrorContext(ctx, "Failed to write order event to Kafka",
				"order_id", d.Event.OrderID.String(), "error", writeErr)
		}
	}
}

func encode(d broadcast.Delivery[event.OrderEvent]) (kafka.Message, error) {
	ev := d.Event
	payload := orderChangedMessage{
		Type:      ev.Type.String(),
		OrderID:   ev.OrderID.String(),
		Timestamp: ev.Timestamp,
		Missed:    d.Missed,
	}
	if ev.Order != nil {
		payload.Status = ev.Order.Status.String()
		payload.Total = ev.Order.Total.StringFixed(2)
		payload.Version = ev.Order.Version
		if ev.Order.CourierID != nil {
			payload.CourierID = ev.Order.CourierID.String()
		}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(ev.OrderID.String()),
		Value: data,
		Time:  ev.Timestamp,
	}, nil
}
