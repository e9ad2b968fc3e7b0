package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSetStoreOpenCommandIsNotConstructed = errors.New(
	"SetStoreOpenCommand must be created via NewOpenStoreCommand or NewCloseStoreCommand",
)

// SetStoreOpenCommand flips a vendor's store-open flag. Both directions are
// idempotent: opening an open store or closing a closed one succeeds without
// error. The vendor id comes from the authenticated caller.
type SetStoreOpenCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	open     bool

	guard guard.ConstructorGuard
}

// NewOpenStoreCommand creates a command marking the vendor's store open.
func NewOpenStoreCommand(vendorID kernel.UUID) (SetStoreOpenCommand, error) {
	return newSetStoreOpenCommand(vendorID, true)
}

// NewCloseStoreCommand creates a command marking the vendor's store closed.
func NewCloseStoreCommand(vendorID kernel.UUID) (SetStoreOpenCommand, error) {
	return newSetStoreOpenCommand(vendorID, false)
}

func newSetStoreOpenCommand(vendorID kernel.UUID, open bool) (SetStoreOpenCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return SetStoreOpenCommand{}, err
	}
	return SetStoreOpenCommand{
		vendorID: vendorID,
		open:     open,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c SetStoreOpenCommand) Validate() error {
	return c.guard.Validate(ErrSetStoreOpenCommandIsNotConstructed)
}

// VendorID returns the vendor whose store state changes.
func (c SetStoreOpenCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Open reports the target state: true opens the store, false closes it.
func (c SetStoreOpenCommand) Open() bool {
	return c.open
}
