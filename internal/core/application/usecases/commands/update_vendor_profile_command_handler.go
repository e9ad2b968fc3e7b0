package commands

import (
	"context"

	"marketplace/internal/core/domain/model/vendor"
)

// UpdateVendorProfileCommandHandler overlays allowlisted profile fields and
// returns the full updated vendor record.
type UpdateVendorProfileCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateVendorProfileCommandHandler creates a handler for profile updates.
func NewUpdateVendorProfileCommandHandler(uowFactory VendorUoWFactory) UpdateVendorProfileCommandHandler {
	return UpdateVendorProfileCommandHandler{uowFactory: uowFactory}
}

// Handle loads the vendor, overlays the present fields, persists the
// aggregate, and returns the updated record.
func (h UpdateVendorProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateVendorProfileCommand,
) (*vendor.Vendor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	seller, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return nil, err
	}

	if err = seller.ApplyProfile(cmd.Update()); err != nil {
		return nil, err
	}

	if err = vendorRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return seller, nil
}
