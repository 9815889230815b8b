package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role is the kind of party asking for a status change.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleStore
	RoleRider
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleCustomer: "customer",
	RoleStore:    "store",
	RoleRider:    "rider",
	RoleAdmin:    "admin",
}

// ParseRole accepts the names used by the identity gateway.
func ParseRole(s string) (Role, error) {
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the verified identity behind a request. For RoleStore the id is
// the store the caller acts for, for every other role it is the user id.
type Actor struct {
	id            kernel.UUID
	role          Role
	isConstructed bool
}

// NewActor validates both parts of the identity.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, isConstructed: true}, nil
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}
