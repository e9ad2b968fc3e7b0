package commands

import (
	"context"
)

// SetStoreOpenCommandHandler applies store open/close requests.
// Fails with a not-found error when the vendor id does not resolve;
// otherwise always succeeds regardless of the current flag.
type SetStoreOpenCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSetStoreOpenCommandHandler creates a handler for store state changes.
func NewSetStoreOpenCommandHandler(uowFactory VendorUoWFactory) SetStoreOpenCommandHandler {
	return SetStoreOpenCommandHandler{uowFactory: uowFactory}
}

// Handle loads the vendor, flips the flag to the requested state, and
// persists the aggregate within a transaction.
func (h SetStoreOpenCommandHandler) Handle(ctx context.Context, cmd SetStoreOpenCommand) error {
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

	if cmd.Open() {
		seller.OpenStore()
	} else {
		seller.CloseStore()
	}

	if err = vendorRepo.Update(ctx, seller); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
