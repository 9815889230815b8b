package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/store"
)

// CreateStoreCommandHandler persists new stores.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the store and returns it.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*store.Store, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	s, err := store.NewStore(cmd.StoreID(), cmd.Name(), cmd.OwnerChatID(), time.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, s); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return s, nil
}
