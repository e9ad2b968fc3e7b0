package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateVendorProfileCommandIsNotConstructed = errors.New(
	"UpdateVendorProfileCommand must be created via NewUpdateVendorProfileCommand constructor",
)

// UpdateVendorProfileCommand overlays profile fields onto a vendor record.
// The update struct is the allowlist: only the fields it enumerates are
// mutable through this path, so a client payload can never reach internal
// state like the store-open flag.
type UpdateVendorProfileCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	update   vendor.ProfileUpdate

	guard guard.ConstructorGuard
}

// NewUpdateVendorProfileCommand creates a command to overlay profile fields.
func NewUpdateVendorProfileCommand(
	vendorID kernel.UUID,
	update vendor.ProfileUpdate,
) (UpdateVendorProfileCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return UpdateVendorProfileCommand{}, err
	}

	return UpdateVendorProfileCommand{
		vendorID: vendorID,
		update:   update,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVendorProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVendorProfileCommandIsNotConstructed)
}

// VendorID returns the vendor whose profile changes.
func (c UpdateVendorProfileCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Update returns the allowlisted partial profile update.
func (c UpdateVendorProfileCommand) Update() vendor.ProfileUpdate {
	return c.update
}
