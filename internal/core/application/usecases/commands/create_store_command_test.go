package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStoreCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	chatID := int64(12)

	cmd, err := commands.NewCreateStoreCommand(id, "Pizza Place", &chatID)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.StoreID())
	assert.Equal(t, "Pizza Place", cmd.Name())
	assert.Equal(t, &chatID, cmd.OwnerChatID())
}

func TestNewCreateStoreCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateStoreCommand(kernel.UUID{}, "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, commands.ErrStoreNameIsRequired)
}

func TestCreateStoreCommand_ZeroValue(t *testing.T) {
	var cmd commands.CreateStoreCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateStoreCommandIsNotConstructed)
}
