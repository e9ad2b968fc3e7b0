package commands

import (
	"context"
)

// UpdatePackSettingsCommandHandler replaces a vendor's pack settings.
type UpdatePackSettingsCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdatePackSettingsCommandHandler creates a handler for pack-settings updates.
func NewUpdatePackSettingsCommandHandler(uowFactory VendorUoWFactory) UpdatePackSettingsCommandHandler {
	return UpdatePackSettingsCommandHandler{uowFactory: uowFactory}
}

// Handle loads the vendor, replaces the pack settings, and persists the
// aggregate within a transaction.
func (h UpdatePackSettingsCommandHandler) Handle(ctx context.Context, cmd UpdatePackSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	seller, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	if err = seller.SetPackSettings(cmd.Settings()); err != nil {
		return err
	}

	if err = vendorRepo.Update(ctx, seller); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
