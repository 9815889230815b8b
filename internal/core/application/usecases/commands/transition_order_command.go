package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand asks to move an order to another status. Every call
// site (store dashboard, rider app, customer app, admin panel) uses it.
//
// Example:
//
//	rider, _ := order.NewActor(riderID, order.RoleRider)
//	expected := order.NotifyingRiders
//	cmd, err := NewTransitionOrderCommand(orderID, rider, order.PickingUp, &expected)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	actor          order.Actor
	target         order.Status
	expectedStatus *order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand validates the order ID, the actor and, when
// given, the status the caller last saw. The target is checked against the
// transition table by the order itself.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	actor order.Actor,
	target order.Status,
	expectedStatus *order.Status,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		target: target,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setExpectedStatus(expectedStatus),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c TransitionOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// ExpectedStatus returns the status the caller saw, if it sent one.
func (c TransitionOrderCommand) ExpectedStatus() (order.Status, bool) {
	if c.expectedStatus == nil {
		return order.Unknown, false
	}
	return *c.expectedStatus, true
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setExpectedStatus(expected *order.Status) error {
	if expected == nil {
		return nil
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	status := *expected
	c.expectedStatus = &status
	return nil
}
