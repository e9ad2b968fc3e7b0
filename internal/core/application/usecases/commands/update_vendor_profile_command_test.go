package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateVendorProfileCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	update := vendor.ProfileUpdate{City: strPtr("Lagos")}

	cmd, err := commands.NewUpdateVendorProfileCommand(id, update)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.VendorID())
	assert.Equal(t, update, cmd.Update())
}

func TestNewUpdateVendorProfileCommand_InvalidVendorID(t *testing.T) {
	_, err := commands.NewUpdateVendorProfileCommand(kernel.UUID{}, vendor.ProfileUpdate{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
