package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, role := range []order.Role{order.RoleCustomer, order.RoleStore, order.RoleRider, order.RoleAdmin} {
		parsed, err := order.ParseRole(role.String())

		require.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	_, err := order.ParseRole("courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), `"courier" is not a valid role`)
}

func TestNewActor(t *testing.T) {
	t.Run("should create actor", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := order.NewActor(id, order.RoleRider)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, order.RoleRider, actor.Role())
	})

	t.Run("should reject unknown role and empty id together", func(t *testing.T) {
		_, err := order.NewActor(kernel.UUID{}, order.RoleUnknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not validate zero value", func(t *testing.T) {
		var actor order.Actor
		assert.ErrorIs(t, actor.Validate(), order.ErrActorIsNotConstructed)
	})
}
