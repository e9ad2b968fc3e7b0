package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePackSettingsCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdatePackSettingsCommand(id, 4, 250)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.VendorID())
	assert.Equal(t, 4, cmd.Settings().Limit())
	assert.InEpsilon(t, 250.0, cmd.Settings().Price(), 1e-9)
}

func TestNewUpdatePackSettingsCommand_ZeroLimit(t *testing.T) {
	_, err := commands.NewUpdatePackSettingsCommand(kernel.NewUUID(), 0, 250)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdatePackSettingsCommand_NegativePrice(t *testing.T) {
	_, err := commands.NewUpdatePackSettingsCommand(kernel.NewUUID(), 4, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdatePackSettingsCommand_FreePackIsAllowed(t *testing.T) {
	cmd, err := commands.NewUpdatePackSettingsCommand(kernel.NewUUID(), 1, 0)
	require.NoError(t, err)
	assert.Zero(t, cmd.Settings().Price())
}
