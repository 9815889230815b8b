package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the marketplace. Apart from the status and
// what moves with it (rider, updatedAt, version) it is immutable.
//
// Order follows these invariants:
//   - Identifiers of the order, its store and its customer are valid
//   - There is at least one item and the total equals the sum of subtotals
//   - The status only changes through Transition, along the transition table
//   - The rider is assigned once, when entering picking_up, and never cleared
type Order struct {
	id         kernel.UUID
	storeID    kernel.UUID
	customerID kernel.UUID

	// riderID is nil until a rider claims the order
	riderID *kernel.UUID

	items []Item
	total kernel.Money

	status    Status
	createdAt time.Time
	updatedAt time.Time

	// version starts at 1 and grows with every transition
	version int

	isConstructed bool
}

// Snapshot is the plain-data form of an Order used by persistence and
// read models.
type Snapshot struct {
	ID         kernel.UUID
	StoreID    kernel.UUID
	CustomerID kernel.UUID
	RiderID    *kernel.UUID
	Items      []Item
	Total      kernel.Money
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int
}

// NewOrder creates an order in Pending status at checkout.
//
// Example:
//
//	pizza, _ := order.NewItem("Margherita", 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), storeID, customerID, []order.Item{pizza}, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, storeID, customerID kernel.UUID, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIdentity(id, storeID, customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total must match
// the items.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		createdAt:     s.CreatedAt.UTC(),
		updatedAt:     s.UpdatedAt.UTC(),
		isConstructed: true,
	}

	var versionErr error
	if s.Version < 1 {
		versionErr = errs.NewValueIsOutOfRangeError("version", s.Version, 1, "unbounded")
	}

	if err := errors.Join(
		o.setIdentity(s.ID, s.StoreID, s.CustomerID),
		o.setItems(s.Items),
		s.Status.Validate(),
		versionErr,
	); err != nil {
		return nil, err
	}

	if err := s.Total.Validate(); err != nil {
		return nil, err
	}
	if !o.total.IsEqual(s.Total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored total %s does not match items total %s", s.Total, o.total),
		)
	}

	if s.RiderID != nil {
		if err := s.RiderID.Validate(); err != nil {
			return nil, err
		}
		riderID := *s.RiderID
		o.riderID = &riderID
	}

	if err := s.Status.ValidateCanHaveRider(o.riderID != nil); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.version = s.Version
	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Rider returns the claiming rider, or nil.
func (o *Order) Rider() *kernel.UUID {
	if o.riderID == nil {
		return nil
	}
	id := *o.riderID
	return &id
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

func (o *Order) Version() int {
	return o.version
}

// Snapshot copies the current state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:         o.id,
		StoreID:    o.storeID,
		CustomerID: o.customerID,
		RiderID:    o.Rider(),
		Items:      o.Items(),
		Total:      o.total,
		Status:     o.status,
		CreatedAt:  o.createdAt,
		UpdatedAt:  o.updatedAt,
		Version:    o.version,
	}
}

// Transition moves the order to target on behalf of actor.
//
// Checks, in order:
//   - target is a declared status and the current status is not terminal,
//     otherwise ErrInvalidTransition
//   - target differs from the current status, otherwise a ConflictError
//     (the change was already applied by someone)
//   - an edge current -> target exists, otherwise ErrInvalidTransition
//   - the actor's role is listed on the edge, otherwise ErrUnauthorized
//   - the actor acts for this order (own store, own order, assigned rider),
//     otherwise ErrUnauthorized
//   - claiming requires that no rider is assigned yet, otherwise a ConflictError
//
// On success the status, updatedAt and version change, and the rider is
// recorded when the edge assigns one. On failure the order is untouched.
func (o *Order) Transition(actor Actor, target Status, now time.Time) (Change, error) {
	if err := errors.Join(o.Validate(), actor.Validate()); err != nil {
		return Change{}, err
	}

	edge, err := o.resolveEdge(target)
	if err != nil {
		return Change{}, err
	}

	if !edge.Allows(actor.Role()) {
		return Change{}, fmt.Errorf("%w: role %s cannot move order from %s to %s",
			ErrUnauthorized, actor.Role(), o.status, target)
	}

	if err = o.checkOwnership(actor, edge); err != nil {
		return Change{}, err
	}

	if edge.Effect() == EffectAssignRider && o.riderID != nil {
		return Change{}, errs.NewConflictError("order", o.id.String(), ReasonAlreadyClaimed)
	}

	from := o.status
	o.status = target
	o.updatedAt = now.UTC()
	o.version++

	if edge.Effect() == EffectAssignRider {
		riderID := actor.ID()
		o.riderID = &riderID
	}

	return Change{
		OrderID: o.id,
		From:    from,
		To:      target,
		Edge:    edge,
		Actor:   actor,
		At:      o.updatedAt,
		Version: o.version,
	}, nil
}

func (o *Order) resolveEdge(target Status) (Edge, error) {
	if err := target.Validate(); err != nil {
		return Edge{}, fmt.Errorf("%w: %w", ErrInvalidTransition, err)
	}

	if o.status.IsTerminal() {
		return Edge{}, fmt.Errorf("%w: %s is a terminal status", ErrInvalidTransition, o.status)
	}

	if target == o.status {
		return Edge{}, errs.NewConflictError("order", o.id.String(), ConflictReason(target))
	}

	edge, ok := FindEdge(o.status, target)
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}

	return edge, nil
}

func (o *Order) checkOwnership(actor Actor, edge Edge) error {
	var owner *kernel.UUID
	switch actor.Role() {
	case RoleStore:
		owner = &o.storeID
	case RoleCustomer:
		owner = &o.customerID
	case RoleRider:
		if edge.Effect() == EffectAssignRider {
			return nil
		}
		owner = o.riderID
	default:
		return nil
	}

	if owner == nil || !owner.IsEqual(actor.ID()) {
		return fmt.Errorf("%w: %s %s does not act for order %s",
			ErrUnauthorized, actor.Role(), actor.ID(), o.id)
	}
	return nil
}

func (o *Order) setIdentity(id, storeID, customerID kernel.UUID) error {
	if err := errors.Join(id.Validate(), storeID.Validate(), customerID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.storeID = storeID
	o.customerID = customerID
	return nil
}

// setItems validates the lines and fixes the total.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		total = total.Add(item.Subtotal())
	}

	o.items = slices.Clone(items)
	o.total = total
	return nil
}
