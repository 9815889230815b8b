package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateStoreCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), "Pizza Place", nil)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*store.Store")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	s, err := commands.NewCreateStoreCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, s.ID().IsEqual(cmd.StoreID()))
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateStoreCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateStoreCommand(kernel.NewUUID(), "Pizza Place", nil)
	require.NoError(t, err)

	repo := new(MockStoreRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StoreRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.Anything).Return(errors.New("db down")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStoreUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateStoreCommandHandler(factory).Handle(ctx, cmd)

	require.EqualError(t, err, "db down")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateStoreCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockStoreUoWFactory)

	_, err := commands.NewCreateStoreCommandHandler(factory).Handle(t.Context(), commands.CreateStoreCommand{})

	require.ErrorIs(t, err, commands.ErrCreateStoreCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
