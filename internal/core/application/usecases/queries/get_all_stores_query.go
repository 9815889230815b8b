package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetAllStoresQueryIsNotConstructed = errors.New(
		"GetAllStoresQuery must be created via NewGetAllStoresQuery constructor",
	)
)

// GetAllStoresQuery lists registered stores sorted by name.
type GetAllStoresQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllStoresQuery() GetAllStoresQuery {
	return GetAllStoresQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllStoresQuery) Validate() error {
	return q.guard.Validate(ErrGetAllStoresQueryIsNotConstructed)
}

// GetAllStoresQueryResponse is a store as listed to clients. The owner chat
// id is not exposed.
type GetAllStoresQueryResponse struct {
	ID           kernel.UUID
	Name         string
	HasOwnerChat bool
	CreatedAt    time.Time
}
