package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"
)

// TransitionOrderCommandHandler applies one status change.
//
// The order is loaded, Order.Transition checks the edge against the
// transition table, and the new status is written with a conditional update
// on the status and version that were read. Of two concurrent requests for
// the same change only one write lands; the other gets errs.ConflictError.
//
// After commit the store is read, the edge's audiences are notified and an
// OrderStatusChanged event is published. All of it is best-effort and never
// changes the result.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // someone already took this order
//	case errors.Is(err, order.ErrUnauthorized):
//	case errors.Is(err, order.ErrInvalidTransition):
//	}
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher *NotificationDispatcher
	publisher  ports.OrderEventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewTransitionOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher *NotificationDispatcher,
	publisher ports.OrderEventPublisher,
	m *metrics.Metrics,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		publisher:  publisher,
		metrics:    m,
		logger:     logger.With("component", "TransitionOrderCommandHandler"),
	}
}

// Handle returns the order after the change.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	o, change, err := h.apply(ctx, cmd)
	if err != nil {
		from := change.From
		if from == order.Unknown && o != nil {
			from = o.Status()
		}
		h.metrics.ObserveTransition(from.String(), cmd.Target().String(), transitionOutcome(err))
		return nil, err
	}
	h.metrics.ObserveTransition(change.From.String(), change.To.String(), metrics.OutcomeOK)

	h.logger.Info("order status changed",
		"order_id", o.ID().String(),
		"from", change.From.String(),
		"to", change.To.String(),
		"actor_role", change.Actor.Role().String(),
		"version", change.Version,
	)

	h.publish(ctx, change)

	return o, nil
}

func (h TransitionOrderCommandHandler) apply(
	ctx context.Context,
	cmd TransitionOrderCommand,
) (*order.Order, order.Change, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.Change{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.Change{}, err
	}

	if expected, ok := cmd.ExpectedStatus(); ok && expected != o.Status() {
		return o, order.Change{}, errs.NewConflictError("order", o.ID().String(), order.ConflictReason(cmd.Target()))
	}

	change, err := o.Transition(cmd.Actor(), cmd.Target(), time.Now())
	if err != nil {
		return o, order.Change{}, err
	}

	if err = orderRepo.UpdateStatus(ctx, o, change); err != nil {
		return o, change, err
	}

	if err = uow.Commit(ctx); err != nil {
		return o, change, err
	}

	h.notify(ctx, uow, change, o)

	return o, change, nil
}

// notify reads the store outside the committed transaction. The store only
// resolves the owner audience, so a failed read skips the notifications and
// leaves the status change in place.
func (h TransitionOrderCommandHandler) notify(ctx context.Context, uow UoW, change order.Change, o *order.Order) {
	s, err := uow.StoreRepository().Get(ctx, o.StoreID())
	if err != nil {
		h.logger.Warn("notifications skipped, store not loaded",
			"order_id", o.ID().String(),
			"store_id", o.StoreID().String(),
			"to", change.To.String(),
			"error", err,
		)
		return
	}

	h.dispatcher.DispatchTransition(ctx, change, o, s)
}

func (h TransitionOrderCommandHandler) publish(ctx context.Context, change order.Change) {
	if h.publisher == nil {
		return
	}

	if err := h.publisher.PublishStatusChanged(context.WithoutCancel(ctx), change); err != nil {
		h.metrics.ObserveEvent(metrics.OutcomeError)
		h.logger.Warn("order event not published",
			"order_id", change.OrderID.String(),
			"error", err,
		)
		return
	}
	h.metrics.ObserveEvent(metrics.OutcomeOK)
}

func transitionOutcome(err error) string {
	switch {
	case errors.Is(err, errs.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, order.ErrInvalidTransition), errors.Is(err, order.ErrUnauthorized):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
