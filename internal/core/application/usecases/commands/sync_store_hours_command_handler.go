package commands

import (
	"context"
)

// SyncStoreHoursCommandHandler walks all vendors and flips each store-open
// flag to match the weekly schedule. Only vendors whose state actually
// differs are written, so a tick with nothing to do touches no rows.
type SyncStoreHoursCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewSyncStoreHoursCommandHandler creates a handler for schedule reconciliation.
func NewSyncStoreHoursCommandHandler(uowFactory VendorUoWFactory) SyncStoreHoursCommandHandler {
	return SyncStoreHoursCommandHandler{uowFactory: uowFactory}
}

// Handle reconciles every vendor within one transaction. Vendors whose
// schedule marks the current day inactive are skipped entirely; their
// store-open flag stays whatever it was set to by hand.
func (h SyncStoreHoursCommandHandler) Handle(ctx context.Context, cmd SyncStoreHoursCommand) error {
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
	sellers, err := vendorRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, seller := range sellers {
		shouldBeOpen, scheduled := seller.ShouldBeOpenAt(cmd.At())
		if !scheduled || seller.IsStoreOpen() == shouldBeOpen {
			continue
		}

		if shouldBeOpen {
			seller.OpenStore()
		} else {
			seller.CloseStore()
		}

		if err = vendorRepo.Update(ctx, seller); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
