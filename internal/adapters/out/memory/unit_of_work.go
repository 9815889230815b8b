package memory

import (
	"context"
	"errors"

	"marketplace/internal/core/ports"
)

// ErrNoTransaction is returned by Commit and Rollback without Begin.
var ErrNoTransaction = errors.New("no active transaction")

type UnitOfWorkFactory struct {
	storage *Storage
}

func NewUnitOfWorkFactory(storage *Storage) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{storage: storage}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{storage: f.storage}
}

// UnitOfWork buffers writes until Commit. Reads see committed state only.
// Writes made without Begin are applied immediately.
type UnitOfWork struct {
	storage *Storage
	active  bool
	pending []op
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.active = true
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ops := u.pending
	u.pending = nil
	u.active = false
	return u.storage.commit(ops)
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.pending = nil
	u.active = false
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) StoreRepository() ports.StoreRepository {
	return &StoreRepository{uow: u}
}

func (u *UnitOfWork) enqueue(o op) error {
	if !u.active {
		return u.storage.commit([]op{o})
	}
	u.pending = append(u.pending, o)
	return nil
}
