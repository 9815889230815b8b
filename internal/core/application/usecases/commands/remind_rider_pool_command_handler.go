package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
)

// RemindRiderPoolCommandHandler finds unclaimed orders and broadcasts them
// to the rider pool again. Reading happens in one transaction; sending is
// done after it is closed.
type RemindRiderPoolCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *NotificationDispatcher
}

func NewRemindRiderPoolCommandHandler(uowFactory UoWFactory, dispatcher *NotificationDispatcher) RemindRiderPoolCommandHandler {
	return RemindRiderPoolCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

type reminderTarget struct {
	order *order.Order
	store *store.Store
}

// Handle returns how many reminders were sent.
func (h RemindRiderPoolCommandHandler) Handle(ctx context.Context, cmd RemindRiderPoolCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	targets, err := h.load(ctx, time.Now().Add(-cmd.WaitingFor()))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, t := range targets {
		sent += h.dispatcher.DispatchReminder(ctx, t.order, t.store)
	}

	return sent, nil
}

func (h RemindRiderPoolCommandHandler) load(ctx context.Context, olderThan time.Time) ([]reminderTarget, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().ListByStatus(ctx, order.NotifyingRiders, olderThan)
	if err != nil {
		return nil, err
	}

	stores := make(map[string]*store.Store)
	targets := make([]reminderTarget, 0, len(orders))
	for _, o := range orders {
		key := o.StoreID().String()
		s, ok := stores[key]
		if !ok {
			if s, err = uow.StoreRepository().Get(ctx, o.StoreID()); err != nil {
				return nil, err
			}
			stores[key] = s
		}
		targets = append(targets, reminderTarget{order: o, store: s})
	}

	return targets, nil
}
