package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, change order.Change) error {
	args := m.Called(ctx, o, change)
	return args.Error(0)
}

func (m *MockOrderRepository) ListByStatus(
	ctx context.Context,
	status order.Status,
	olderThan time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, status, olderThan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStoreRepository struct{ mock.Mock }

func (m *MockStoreRepository) Add(ctx context.Context, s *store.Store) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Store), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StoreRepository() ports.StoreRepository {
	args := m.Called()
	return args.Get(0).(ports.StoreRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockStoreUoWFactory struct{ mock.Mock }

func (m *MockStoreUoWFactory) Create() commands.StoreUoW {
	args := m.Called()
	return args.Get(0).(commands.StoreUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, change order.Change) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

// uowFactoryFunc adapts a ports.UnitOfWorkFactory for handlers.
type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW {
	return f()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDispatcher(t *testing.T, notifier ports.Notifier, m *metrics.Metrics) *commands.NotificationDispatcher {
	t.Helper()
	planner, err := services.NewNotificationPlanner()
	require.NoError(t, err)
	return commands.NewNotificationDispatcher(planner, notifier, time.Second, m, discardLogger())
}

func newTestStore(t *testing.T, chatID *int64) *store.Store {
	t.Helper()
	s, err := store.NewStore(kernel.NewUUID(), "Pizza Place", chatID, time.Now())
	require.NoError(t, err)
	return s
}

func newTestItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.MoneyFromString("100.00")
	require.NoError(t, err)
	pizza, err := order.NewItem("Margherita", 2, price)
	require.NoError(t, err)
	drinkPrice, err := kernel.MoneyFromString("50.00")
	require.NoError(t, err)
	drink, err := order.NewItem("Lemonade", 1, drinkPrice)
	require.NoError(t, err)
	return []order.Item{pizza, drink}
}

func newTestOrder(t *testing.T, s *store.Store) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), s.ID(), kernel.NewUUID(), newTestItems(t), time.Now())
	require.NoError(t, err)
	return o
}

func newTestActor(t *testing.T, id kernel.UUID, role order.Role) order.Actor {
	t.Helper()
	a, err := order.NewActor(id, role)
	require.NoError(t, err)
	return a
}
