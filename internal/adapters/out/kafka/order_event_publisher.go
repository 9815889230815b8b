package kafka

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

const EventOrderStatusChanged = "OrderStatusChanged"

// OrderStatusChanged is the event written for every applied transition.
type OrderStatusChanged struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"orderId"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   string    `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Version   int       `json:"version"`
	At        time.Time `json:"at"`
}

// OrderEventPublisher implements ports.OrderEventPublisher. Messages are
// keyed by order id.
type OrderEventPublisher struct {
	writer MessageWriter
}

func NewOrderEventPublisher(writer MessageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, change order.Change) error {
	orderID := change.OrderID.String()
	return PublishJSON(ctx, p.writer, orderID, OrderStatusChanged{
		Type:      EventOrderStatusChanged,
		OrderID:   orderID,
		From:      change.From.String(),
		To:        change.To.String(),
		ActorID:   change.Actor.ID().String(),
		ActorRole: change.Actor.Role().String(),
		Version:   change.Version,
		At:        change.At.UTC(),
	})
}

func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
