package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/guard"
)

var ErrUpdatePackSettingsCommandIsNotConstructed = errors.New(
	"UpdatePackSettingsCommand must be created via NewUpdatePackSettingsCommand constructor",
)

// UpdatePackSettingsCommand replaces a vendor's fulfilment-pack settings
// wholesale. There is no partial merge: both limit and price are required.
type UpdatePackSettingsCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	settings vendor.PackSettings

	guard guard.ConstructorGuard
}

// NewUpdatePackSettingsCommand creates a command carrying validated pack settings.
func NewUpdatePackSettingsCommand(vendorID kernel.UUID, limit int, price float64) (UpdatePackSettingsCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return UpdatePackSettingsCommand{}, err
	}

	settings, err := vendor.NewPackSettings(limit, price)
	if err != nil {
		return UpdatePackSettingsCommand{}, err
	}

	return UpdatePackSettingsCommand{
		vendorID: vendorID,
		settings: settings,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePackSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePackSettingsCommandIsNotConstructed)
}

// VendorID returns the vendor whose pack settings change.
func (c UpdatePackSettingsCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Settings returns the replacement pack settings.
func (c UpdatePackSettingsCommand) Settings() vendor.PackSettings {
	return c.settings
}
