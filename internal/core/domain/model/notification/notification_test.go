package notification_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()

	t.Run("device", func(t *testing.T) {
		n, err := notification.NewDevice(userID, orderID, "Cooking", "Your order is cooking")

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, notification.KindDevice, n.Kind())
		assert.Equal(t, userID.String(), n.Recipient())
		assert.True(t, n.OrderID().IsEqual(orderID))
		assert.Equal(t, "Cooking", n.Title())
		assert.Equal(t, "Your order is cooking", n.Body())
	})

	t.Run("broadcast", func(t *testing.T) {
		n, err := notification.NewBroadcast(orderID, "New order", "")

		require.NoError(t, err)
		assert.Equal(t, notification.KindBroadcast, n.Kind())
		assert.Empty(t, n.Recipient())
	})

	t.Run("chat", func(t *testing.T) {
		n, err := notification.NewChat(-100123, orderID, "New order", "2 items")

		require.NoError(t, err)
		assert.Equal(t, notification.KindChat, n.Kind())
		assert.Equal(t, "-100123", n.Recipient())
	})

	t.Run("should reject missing parts", func(t *testing.T) {
		_, err := notification.NewChat(0, orderID, "t", "b")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = notification.NewDevice(kernel.UUID{}, orderID, "t", "b")
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

		_, err = notification.NewBroadcast(kernel.UUID{}, "", "b")
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "title")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var n notification.Notification
		assert.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
		assert.Equal(t, "unknown", n.Kind().String())
	})
}
