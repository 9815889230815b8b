package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fraction digits kept for every amount.
const moneyScale = 2

var (
	// ErrMoneyIsNegative is the cause attached when a negative amount is supplied.
	ErrMoneyIsNegative = errors.New("amount must not be negative")

	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")
)

// Money is a non-negative amount rounded to two fraction digits. Prices and
// order totals are always Money, never float64.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoney rounds amount to two fraction digits and rejects negatives.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s: %w", amount.String(), ErrMoneyIsNegative),
		)
	}
	return Money{amount: amount.Round(moneyScale), isConstructed: true}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// Mul returns m multiplied by a whole quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// Decimal exposes the amount for persistence.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fraction digits.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
