package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWaitingOrder(t *testing.T, s *store.Store) *order.Order {
	t.Helper()
	o := newTestOrder(t, s)
	actor := newTestActor(t, s.ID(), order.RoleStore)
	for _, to := range []order.Status{order.Cooking, order.ReadyForPickup, order.NotifyingRiders} {
		_, err := o.Transition(actor, to, time.Now())
		require.NoError(t, err)
	}
	return o
}

func TestRemindRiderPoolCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	s := newTestStore(t, nil)
	first := newWaitingOrder(t, s)
	second := newWaitingOrder(t, s)
	cmd, err := commands.NewRemindRiderPoolCommand(5 * time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	storeRepo := new(MockStoreRepository)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	olderThan := mock.MatchedBy(func(ts time.Time) bool {
		return ts.Before(time.Now().Add(-4 * time.Minute))
	})
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("ListByStatus", ctx, order.NotifyingRiders, olderThan).
			Return([]*order.Order{first, second}, nil).Once(),
		uow.On("StoreRepository").Return(storeRepo).Once(),
		storeRepo.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notification.Notification) bool {
		return n.Kind() == notification.KindBroadcast
	})).Return(nil).Twice()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemindRiderPoolCommandHandler(factory, newDispatcher(t, notifier, nil))
	sent, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, order.NotifyingRiders, first.Status())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestRemindRiderPoolCommandHandler_Handle_NothingWaiting(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemindRiderPoolCommand(time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("ListByStatus", ctx, order.NotifyingRiders, mock.Anything).Return([]*order.Order{}, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	notifier := new(MockNotifier)
	h := commands.NewRemindRiderPoolCommandHandler(factory, newDispatcher(t, notifier, nil))
	sent, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, sent)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestRemindRiderPoolCommandHandler_Handle_ListFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRemindRiderPoolCommand(time.Minute)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)
	orderRepo.On("ListByStatus", ctx, order.NotifyingRiders, mock.Anything).Return(nil, assert.AnError)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemindRiderPoolCommandHandler(factory, newDispatcher(t, new(MockNotifier), nil))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
}
