package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles customer checkout. The order is stored
// in pending status and the store owner is alerted after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher)
//	o, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *NotificationDispatcher
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, dispatcher *NotificationDispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle creates the order. It fails with errs.ObjectNotFoundError when the
// store does not exist.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	s, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), s.ID(), cmd.Customer().ID(), cmd.Items(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.DispatchCheckout(ctx, o, s)

	return o, nil
}
