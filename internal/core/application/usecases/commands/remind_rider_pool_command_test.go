package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemindRiderPoolCommand(t *testing.T) {
	cmd, err := commands.NewRemindRiderPoolCommand(10 * time.Minute)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 10*time.Minute, cmd.WaitingFor())

	for _, d := range []time.Duration{0, -time.Second} {
		_, err = commands.NewRemindRiderPoolCommand(d)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}

	var zero commands.RemindRiderPoolCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrRemindRiderPoolCommandIsNotConstructed)
}
