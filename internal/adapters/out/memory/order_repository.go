package memory

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// OrderRepository reads committed state and queues writes on its unit of work.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	id := snap.ID.Bytes()
	return r.uow.enqueue(op{
		check: func(s *Storage) error {
			if _, exists := s.orders[id]; exists {
				return errs.NewConflictError("order", id, "order already exists")
			}
			return nil
		},
		apply: func(s *Storage) {
			s.orders[id] = snap
		},
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, ok := r.uow.storage.order(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snap)
}

// UpdateStatus checks the conditional write at once so the loser of a race
// learns it early, and again at commit.
func (r *OrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, change order.Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	r.uow.storage.mu.RLock()
	err := checkStatus(r.uow.storage, snap, change)
	r.uow.storage.mu.RUnlock()
	if err != nil {
		return err
	}

	return r.uow.enqueue(op{
		check: func(s *Storage) error {
			return checkStatus(s, snap, change)
		},
		apply: func(s *Storage) {
			s.orders[snap.ID.Bytes()] = snap
		},
	})
}

func (r *OrderRepository) ListByStatus(
	ctx context.Context,
	status order.Status,
	olderThan time.Time,
) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snaps := r.uow.storage.ordersInStatus(status, olderThan)
	result := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}
