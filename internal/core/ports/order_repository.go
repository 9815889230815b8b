package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// Returns errs.ConflictError if an order with the same ID exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus writes the status, rider, updatedAt and version of
	// aggregate only if the stored row still has change.From as status and
	// change.Version-1 as version. Otherwise nothing is written and an
	// errs.ConflictError is returned.
	//
	// This conditional write is what decides concurrent transitions: of two
	// riders claiming the same order, the one whose write lands first wins.
	UpdateStatus(ctx context.Context, aggregate *order.Order, change order.Change) error

	// ListByStatus returns orders in status whose last update is older than
	// olderThan, oldest first.
	ListByStatus(ctx context.Context, status order.Status, olderThan time.Time) ([]*order.Order, error)
}
