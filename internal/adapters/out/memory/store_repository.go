package memory

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
)

type StoreRepository struct {
	uow *UnitOfWork
}

func (r *StoreRepository) Add(ctx context.Context, aggregate *store.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	rec := toStoreRecord(aggregate)
	return r.uow.enqueue(op{
		check: func(s *Storage) error {
			if _, exists := s.stores[rec.id]; exists {
				return errs.NewConflictError("store", rec.id, "store already exists")
			}
			return nil
		},
		apply: func(s *Storage) {
			s.stores[rec.id] = rec
		},
	})
}

func (r *StoreRepository) Get(ctx context.Context, id kernel.UUID) (*store.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec, ok := r.uow.storage.store(id.Bytes())
	if !ok {
		return nil, errs.NewObjectNotFoundError("store", id.String())
	}

	storeID, err := kernel.UUIDFromGoogle(rec.id)
	if err != nil {
		return nil, err
	}
	return store.RestoreStore(storeID, rec.name, rec.ownerChatID, rec.createdAt)
}
