package order

import (
	"errors"
	"slices"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrInvalidTransition is returned when no edge leads from the current
	// status to the requested one.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrUnauthorized is returned when the edge exists but the actor may not take it.
	ErrUnauthorized = errors.New("actor is not allowed to perform this transition")
)

// Conflict reasons shown to the caller.
const (
	ReasonAlreadyClaimed = "order already claimed by another rider"
	ReasonAlreadyApplied = "order status has already changed"
)

// ConflictReason is the message given to a caller whose change towards
// target lost against another writer.
func ConflictReason(target Status) string {
	if target == PickingUp {
		return ReasonAlreadyClaimed
	}
	return ReasonAlreadyApplied
}

// Effect is the state change an edge performs besides moving the status.
type Effect int

const (
	EffectNone Effect = iota
	EffectNotifyRiderPool
	EffectAssignRider
	EffectRevert
)

// Audience is who hears about an applied edge.
type Audience int

const (
	AudienceCustomer Audience = iota + 1
	AudienceStoreOwner
	AudienceRiderPool
)

func (a Audience) String() string {
	switch a {
	case AudienceCustomer:
		return "customer"
	case AudienceStoreOwner:
		return "store_owner"
	case AudienceRiderPool:
		return "rider_pool"
	default:
		return "unknown"
	}
}

// Edge is one permitted (from, roles, to) transition.
type Edge struct {
	from      Status
	to        Status
	roles     []Role
	effect    Effect
	audiences []Audience
}

func (e Edge) From() Status {
	return e.from
}

func (e Edge) To() Status {
	return e.to
}

func (e Edge) Effect() Effect {
	return e.effect
}

// Audiences returns a copy of the audiences notified after the edge is applied.
func (e Edge) Audiences() []Audience {
	return slices.Clone(e.audiences)
}

// Allows reports whether role may take the edge.
func (e Edge) Allows(role Role) bool {
	return slices.Contains(e.roles, role)
}

// transitionTable is the only place where legal status changes are declared.
var transitionTable = buildTransitionTable()

func buildTransitionTable() []Edge {
	edges := []Edge{
		{from: Pending, to: Cooking, roles: []Role{RoleStore},
			audiences: []Audience{AudienceCustomer}},
		{from: Pending, to: Rejected, roles: []Role{RoleStore, RoleAdmin},
			audiences: []Audience{AudienceCustomer}},
		{from: Cooking, to: ReadyForPickup, roles: []Role{RoleStore},
			audiences: []Audience{AudienceCustomer}},
		{from: ReadyForPickup, to: NotifyingRiders, roles: []Role{RoleStore},
			effect: EffectNotifyRiderPool, audiences: []Audience{AudienceRiderPool}},
		{from: NotifyingRiders, to: PickingUp, roles: []Role{RoleRider},
			effect: EffectAssignRider, audiences: []Audience{AudienceCustomer, AudienceStoreOwner}},
		{from: WaitingForPayment, to: WaitingForConfirmation, roles: []Role{RoleAdmin},
			effect: EffectRevert, audiences: []Audience{AudienceStoreOwner}},
		{from: PickingUp, to: OnTheWay, roles: []Role{RoleRider},
			audiences: []Audience{AudienceCustomer}},
		{from: OnTheWay, to: Delivered, roles: []Role{RoleRider},
			audiences: []Audience{AudienceCustomer, AudienceStoreOwner}},
	}

	for _, s := range AllStatuses() {
		if s.IsTerminal() {
			continue
		}
		edges = append(edges, Edge{
			from:      s,
			to:        Cancelled,
			roles:     []Role{RoleStore, RoleAdmin, RoleCustomer},
			audiences: []Audience{AudienceCustomer, AudienceStoreOwner},
		})
	}

	return edges
}

// FindEdge looks up the edge from -> to.
func FindEdge(from, to Status) (Edge, bool) {
	for _, e := range transitionTable {
		if e.from == from && e.to == to {
			return e, true
		}
	}
	return Edge{}, false
}

// Edges returns the whole transition table.
func Edges() []Edge {
	return slices.Clone(transitionTable)
}

// Change describes one applied transition. Repositories use From as the
// expected status of the conditional write; dispatchers use Edge and Actor
// to pick the audience.
type Change struct {
	OrderID kernel.UUID
	From    Status
	To      Status
	Edge    Edge
	Actor   Actor
	At      time.Time
	Version int
}
