package commands_test

import (
	"testing"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeUoWFactoryFunc func() commands.StoreUoW

func (f storeUoWFactoryFunc) Create() commands.StoreUoW {
	return f()
}

func TestOrderLifecycle_FromCheckoutToDelivery(t *testing.T) {
	ctx := t.Context()
	storage := memory.NewStorage()
	factory := memory.NewUnitOfWorkFactory(storage)
	uowFactory := uowFactoryFunc(func() commands.UoW { return factory.Create() })
	storeUoWFactory := storeUoWFactoryFunc(func() commands.StoreUoW { return factory.Create() })

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notification.Notification) bool {
		return n.Kind() == notification.KindBroadcast
	})).Return(nil).Once()
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n notification.Notification) bool {
		return n.Kind() == notification.KindDevice
	})).Return(nil)

	m := metrics.New("test")
	dispatcher := newDispatcher(t, notifier, m)
	createStore := commands.NewCreateStoreCommandHandler(storeUoWFactory)
	createOrder := commands.NewCreateOrderCommandHandler(uowFactory, dispatcher)
	transition := commands.NewTransitionOrderCommandHandler(uowFactory, dispatcher, nil, m, discardLogger())

	storeCmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), "Pizza Place", nil)
	require.NoError(t, err)
	s, err := createStore.Handle(ctx, storeCmd)
	require.NoError(t, err)

	customer := newTestActor(t, kernel.NewUUID(), order.RoleCustomer)
	orderCmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), s.ID(), customer, newTestItems(t))
	require.NoError(t, err)
	o, err := createOrder.Handle(ctx, orderCmd)
	require.NoError(t, err)
	assert.Equal(t, "250.00", o.Total().String())
	assert.Equal(t, order.Pending, o.Status())

	move := func(actor order.Actor, to order.Status) (*order.Order, error) {
		cmd, err := commands.NewTransitionOrderCommand(o.ID(), actor, to, nil)
		require.NoError(t, err)
		return transition.Handle(ctx, cmd)
	}

	storeActor := newTestActor(t, s.ID(), order.RoleStore)
	for _, to := range []order.Status{order.Cooking, order.ReadyForPickup, order.NotifyingRiders} {
		_, err = move(storeActor, to)
		require.NoError(t, err, "store moves order to %s", to)
	}

	riderA := newTestActor(t, kernel.NewUUID(), order.RoleRider)
	riderB := newTestActor(t, kernel.NewUUID(), order.RoleRider)

	_, err = move(riderA, order.PickingUp)
	require.NoError(t, err)

	_, err = move(riderB, order.PickingUp)
	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, order.ReasonAlreadyClaimed, conflict.Reason)

	_, err = move(riderB, order.OnTheWay)
	require.ErrorIs(t, err, order.ErrUnauthorized)

	_, err = move(riderA, order.OnTheWay)
	require.NoError(t, err)
	_, err = move(riderA, order.Delivered)
	require.NoError(t, err)

	uow := factory.Create()
	stored, err := uow.OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, stored.Status())
	rider := stored.Rider()
	require.NotNil(t, rider)
	assert.True(t, rider.IsEqual(riderA.ID()))
	assert.Equal(t, 7, stored.Version())

	_, err = move(storeActor, order.Cancelled)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	notifier.AssertNumberOfCalls(t, "Notify", 6)
	notifier.AssertExpectations(t)
}

func TestOrderLifecycle_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	ctx := t.Context()
	storage := memory.NewStorage()
	factory := memory.NewUnitOfWorkFactory(storage)
	uowFactory := uowFactoryFunc(func() commands.UoW { return factory.Create() })

	s := newTestStore(t, nil)
	o := newWaitingOrder(t, s)
	uow := factory.Create()
	require.NoError(t, uow.StoreRepository().Add(ctx, s))
	require.NoError(t, uow.OrderRepository().Add(ctx, o))

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)
	transition := commands.NewTransitionOrderCommandHandler(
		uowFactory, newDispatcher(t, notifier, nil), nil, nil, discardLogger(),
	)

	const riders = 6
	cmds := make([]commands.TransitionOrderCommand, riders)
	for i := range cmds {
		cmd, err := commands.NewTransitionOrderCommand(
			o.ID(), newTestActor(t, kernel.NewUUID(), order.RoleRider), order.PickingUp, nil,
		)
		require.NoError(t, err)
		cmds[i] = cmd
	}

	type claim struct {
		rider kernel.UUID
		err   error
	}
	results := make(chan claim, riders)
	for _, cmd := range cmds {
		go func() {
			_, err := transition.Handle(ctx, cmd)
			results <- claim{rider: cmd.Actor().ID(), err: err}
		}()
	}

	var winners []kernel.UUID
	for range riders {
		res := <-results
		if res.err == nil {
			winners = append(winners, res.rider)
			continue
		}
		assert.ErrorIs(t, res.err, errs.ErrConflict)
	}
	require.Len(t, winners, 1)

	stored, err := factory.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.PickingUp, stored.Status())
	require.NotNil(t, stored.Rider())
	assert.True(t, stored.Rider().IsEqual(winners[0]))
}
