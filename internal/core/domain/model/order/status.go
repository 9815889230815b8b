package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> cooking ──> ready_for_pickup ──> notifying_riders ──> picking_up ──> on_the_way ──> delivered
//	   │
//	   └──> rejected
//
//	waiting_for_payment ──> waiting_for_confirmation   (admin correction)
//	any non-terminal ──> cancelled
//
// The stored representation is the lower-case name returned by String.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending is the initial status set at checkout.
	Pending

	// WaitingForConfirmation is reached from WaitingForPayment by an admin correction.
	WaitingForConfirmation

	// WaitingForPayment is only present on orders imported from the payment flow.
	WaitingForPayment

	// Cooking means the store accepted the order.
	Cooking

	// ReadyForPickup means the food is packed.
	ReadyForPickup

	// NotifyingRiders means the rider pool was asked to claim the order.
	NotifyingRiders

	// PickingUp means a rider claimed the order.
	PickingUp

	// OnTheWay means the rider left the store.
	OnTheWay

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled

	// Rejected is terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "unknown",
		Pending:                "pending",
		WaitingForConfirmation: "waiting_for_confirmation",
		WaitingForPayment:      "waiting_for_payment",
		Cooking:                "cooking",
		ReadyForPickup:         "ready_for_pickup",
		NotifyingRiders:        "notifying_riders",
		PickingUp:              "picking_up",
		OnTheWay:               "on_the_way",
		Delivered:              "delivered",
		Cancelled:              "cancelled",
		Rejected:               "rejected",
	}
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Pending,
		WaitingForConfirmation,
		WaitingForPayment,
		Cooking,
		ReadyForPickup,
		NotifyingRiders,
		PickingUp,
		OnTheWay,
		Delivered,
		Cancelled,
		Rejected,
	}
}

// ParseStatus converts the stored name back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored name, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// ValidateCanHaveRider checks that rider assignment agrees with the status.
//
// Business Rules:
//   - picking_up, on_the_way and delivered require a rider
//   - cancelled may or may not have one (a claimed order can still be cancelled)
//   - every other status must not have one
func (s Status) ValidateCanHaveRider(rider bool) error {
	switch s {
	case PickingUp, OnTheWay, Delivered:
		if !rider {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have no rider", s.String()),
			)
		}
	case Cancelled:
	default:
		if rider {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have a rider", s.String()),
			)
		}
	}
	return nil
}
