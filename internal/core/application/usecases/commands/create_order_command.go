package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
	// ErrOnlyCustomersCheckOut wraps order.ErrUnauthorized.
	ErrOnlyCustomersCheckOut = fmt.Errorf("%w: only customers can place orders", order.ErrUnauthorized)
)

// CreateOrderCommand represents a customer checkout.
//
// Example:
//
//	pizza, _ := order.NewItem("Margherita", 2, price)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), storeID, customer, []order.Item{pizza})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	storeID  kernel.UUID
	customer order.Actor
	items    []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout request. The customer must
// be an actor with the customer role.
func NewCreateOrderCommand(
	orderID, storeID kernel.UUID,
	customer order.Actor,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, storeID),
		cmd.setCustomer(customer),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

func (c CreateOrderCommand) Customer() order.Actor {
	return c.customer
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setIDs(orderID, storeID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), storeID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.storeID = storeID
	return nil
}

func (c *CreateOrderCommand) setCustomer(customer order.Actor) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	if customer.Role() != order.RoleCustomer {
		return ErrOnlyCustomersCheckOut
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}
