package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	minItemQuantity = 1
	maxItemQuantity = 100
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order. Items never change after checkout.
type Item struct {
	name      string
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewItem validates name, quantity and unit price.
func NewItem(name string, quantity int, unitPrice kernel.Money) (Item, error) {
	name = strings.TrimSpace(name)

	var nameErr, quantityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity < minItemQuantity || quantity > maxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, minItemQuantity, maxItemQuantity)
	}

	if err := errors.Join(nameErr, quantityErr, unitPrice.Validate()); err != nil {
		return Item{}, err
	}

	return Item{
		name:          name,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity × unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}
