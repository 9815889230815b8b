package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should round to two fraction digits", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("12.345"))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "12.35", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "amount must not be negative")
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("250")

		require.NoError(t, err)
		assert.Equal(t, "250.00", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("100.00")
	side, _ := kernel.MoneyFromString("25.00")

	total := price.Mul(2).Add(side.Mul(2))

	expected, _ := kernel.MoneyFromString("250")
	assert.True(t, total.IsEqual(expected))
	assert.Equal(t, "250.00", total.String())
	assert.True(t, kernel.ZeroMoney().Add(price).IsEqual(price))
}

func TestMoney_Validate(t *testing.T) {
	var zero kernel.Money

	assert.Equal(t, kernel.ErrMoneyIsNotConstructed, zero.Validate())
	assert.NoError(t, kernel.ZeroMoney().Validate())
}
