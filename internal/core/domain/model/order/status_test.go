package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate every declared status", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(12), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_StringAndParse(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.WaitingForConfirmation, "waiting_for_confirmation"},
		{order.WaitingForPayment, "waiting_for_payment"},
		{order.Cooking, "cooking"},
		{order.ReadyForPickup, "ready_for_pickup"},
		{order.NotifyingRiders, "notifying_riders"},
		{order.PickingUp, "picking_up"},
		{order.OnTheWay, "on_the_way"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Rejected, "rejected"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())

			parsed, err := order.ParseStatus(tc.expected)
			require.NoError(t, err)
			assert.Equal(t, tc.status, parsed)
		})
	}

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(42).String())
	})

	t.Run("should not parse unknown", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not parse arbitrary names", func(t *testing.T) {
		_, err := order.ParseStatus("Cooking")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Delivered: true,
		order.Cancelled: true,
		order.Rejected:  true,
	}

	for _, status := range order.AllStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), status.String())
	}
}

func TestStatus_ValidateCanHaveRider(t *testing.T) {
	t.Run("should require a rider once claimed", func(t *testing.T) {
		for _, status := range []order.Status{order.PickingUp, order.OnTheWay, order.Delivered} {
			require.NoError(t, status.ValidateCanHaveRider(true))

			err := status.ValidateCanHaveRider(false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to have no rider")
		}
	})

	t.Run("should forbid a rider before the claim", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Cooking, order.NotifyingRiders, order.Rejected} {
			require.NoError(t, status.ValidateCanHaveRider(false))

			err := status.ValidateCanHaveRider(true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "not a valid status to have a rider")
		}
	})

	t.Run("should accept both for cancelled", func(t *testing.T) {
		require.NoError(t, order.Cancelled.ValidateCanHaveRider(true))
		require.NoError(t, order.Cancelled.ValidateCanHaveRider(false))
	})
}
