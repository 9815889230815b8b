package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// NotificationDispatcher sends the notifications planned for an order event.
// It runs after the status change is committed and never fails the caller:
// planning and delivery errors are logged and counted, nothing is retried.
type NotificationDispatcher struct {
	planner  *services.NotificationPlanner
	notifier ports.Notifier
	timeout  time.Duration
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewNotificationDispatcher(
	planner *services.NotificationPlanner,
	notifier ports.Notifier,
	timeout time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *NotificationDispatcher {
	return &NotificationDispatcher{
		planner:  planner,
		notifier: notifier,
		timeout:  timeout,
		metrics:  m,
		logger:   logger.With("component", "NotificationDispatcher"),
	}
}

// DispatchCheckout alerts the store owner about a new order.
func (d *NotificationDispatcher) DispatchCheckout(ctx context.Context, o *order.Order, s *store.Store) int {
	list, err := d.planner.PlanCheckout(o, s)
	return d.send(ctx, o, "checkout", list, err)
}

// DispatchTransition notifies the audiences of change.Edge.
func (d *NotificationDispatcher) DispatchTransition(
	ctx context.Context,
	change order.Change,
	o *order.Order,
	s *store.Store,
) int {
	list, err := d.planner.PlanTransition(change, o, s)
	return d.send(ctx, o, change.To.String(), list, err)
}

// DispatchReminder repeats the rider pool broadcast for an unclaimed order.
func (d *NotificationDispatcher) DispatchReminder(ctx context.Context, o *order.Order, s *store.Store) int {
	list, err := d.planner.PlanRiderPoolReminder(o, s)
	return d.send(ctx, o, "reminder", list, err)
}

// send returns how many notifications were handed over successfully.
func (d *NotificationDispatcher) send(
	ctx context.Context,
	o *order.Order,
	event string,
	list []notification.Notification,
	planErr error,
) int {
	if planErr != nil {
		d.logger.Error("failed to plan notifications",
			"order_id", o.ID().String(),
			"event", event,
			"error", planErr,
		)
	}

	// The request may already be finished; delivery gets its own deadline.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	sent := 0
	for _, n := range list {
		channel := n.Kind().String()
		if err := d.notifier.Notify(ctx, n); err != nil {
			d.metrics.ObserveNotification(channel, metrics.OutcomeError)
			d.logger.Warn("notification not delivered",
				"order_id", o.ID().String(),
				"event", event,
				"channel", channel,
				"error", err,
			)
			continue
		}
		d.metrics.ObserveNotification(channel, metrics.OutcomeOK)
		sent++
	}

	return sent
}
