package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/notification"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// DeviceExchange routes a push to one user; the routing key is the user id.
	DeviceExchange = "push.direct"
	// RiderPoolExchange fans a broadcast out to every rider queue.
	RiderPoolExchange = "riders.pool"
)

// PushMessage is the JSON body consumed by the push gateway and the rider app.
type PushMessage struct {
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient,omitempty"`
	OrderID   string    `json:"orderId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sentAt"`
}

// PushNotifier publishes device and broadcast notifications. A channel is
// opened per message, so one PushNotifier may be shared by goroutines.
type PushNotifier struct {
	conn Connection
	now  func() time.Time
}

func NewPushNotifier(conn Connection) *PushNotifier {
	return &PushNotifier{
		conn: conn,
		now:  time.Now,
	}
}

func (p *PushNotifier) Notify(ctx context.Context, n notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}

	var exchange, kind, key string
	switch n.Kind() {
	case notification.KindDevice:
		exchange, kind, key = DeviceExchange, amqp.ExchangeDirect, n.Recipient()
	case notification.KindBroadcast:
		exchange, kind = RiderPoolExchange, amqp.ExchangeFanout
	default:
		return fmt.Errorf("rabbitmq cannot deliver %s notifications", n.Kind())
	}

	body, err := json.Marshal(PushMessage{
		Kind:      n.Kind().String(),
		Recipient: n.Recipient(),
		OrderID:   n.OrderID().String(),
		Title:     n.Title(),
		Body:      n.Body(),
		SentAt:    p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(exchange, kind, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	err = ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.OrderID().String(),
		Timestamp:    p.now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", exchange, err)
	}

	return nil
}
