package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// StoreRepository defines the persistence contract for store aggregates.
type StoreRepository interface {
	// Add persists a new store.
	Add(ctx context.Context, aggregate *store.Store) error

	// Get retrieves a store by ID.
	// Returns errs.ObjectNotFoundError when the store does not exist.
	Get(ctx context.Context, id kernel.UUID) (*store.Store, error)
}
