package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var checkoutTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, name string, quantity int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(name, quantity, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func mustActor(t *testing.T, id kernel.UUID, role order.Role) order.Actor {
	t.Helper()
	actor, err := order.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

type parties struct {
	store    order.Actor
	customer order.Actor
	riderA   order.Actor
	riderB   order.Actor
	admin    order.Actor
}

func newParties(t *testing.T, o *order.Order) parties {
	t.Helper()
	return parties{
		store:    mustActor(t, o.StoreID(), order.RoleStore),
		customer: mustActor(t, o.CustomerID(), order.RoleCustomer),
		riderA:   mustActor(t, kernel.NewUUID(), order.RoleRider),
		riderB:   mustActor(t, kernel.NewUUID(), order.RoleRider),
		admin:    mustActor(t, kernel.NewUUID(), order.RoleAdmin),
	}
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{
			mustItem(t, "Margherita", 2, "100.00"),
			mustItem(t, "Lemonade", 1, "50.00"),
		},
		checkoutTime,
	)
	require.NoError(t, err)
	return o
}

// advance applies each step and fails the test on the first error.
func advance(t *testing.T, o *order.Order, steps ...step) {
	t.Helper()
	now := checkoutTime
	for _, s := range steps {
		now = now.Add(time.Minute)
		_, err := o.Transition(s.actor, s.to, now)
		require.NoError(t, err, "%s -> %s", o.Status(), s.to)
	}
}

type step struct {
	actor order.Actor
	to    order.Status
}
