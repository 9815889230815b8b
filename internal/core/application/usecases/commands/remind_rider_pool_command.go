package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRemindRiderPoolCommandIsNotConstructed = errors.New(
	"RemindRiderPoolCommand must be created via NewRemindRiderPoolCommand constructor",
)

// RemindRiderPoolCommand re-broadcasts orders that have been waiting for a
// rider longer than waitingFor. It never changes an order's status.
type RemindRiderPoolCommand struct {
	waitingFor time.Duration
	guard      guard.ConstructorGuard
}

func NewRemindRiderPoolCommand(waitingFor time.Duration) (RemindRiderPoolCommand, error) {
	if waitingFor <= 0 {
		return RemindRiderPoolCommand{}, errs.NewValueIsOutOfRangeError("waitingFor", waitingFor, "1ns", "unbounded")
	}
	return RemindRiderPoolCommand{
		waitingFor: waitingFor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemindRiderPoolCommand) Validate() error {
	return c.guard.Validate(ErrRemindRiderPoolCommandIsNotConstructed)
}

func (c RemindRiderPoolCommand) WaitingFor() time.Duration {
	return c.waitingFor
}
