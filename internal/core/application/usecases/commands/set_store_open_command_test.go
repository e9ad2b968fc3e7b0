package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenStoreCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewOpenStoreCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.VendorID())
	assert.True(t, cmd.Open())
}

func TestNewCloseStoreCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCloseStoreCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.VendorID())
	assert.False(t, cmd.Open())
}

func TestNewOpenStoreCommand_InvalidVendorID(t *testing.T) {
	_, err := commands.NewOpenStoreCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
