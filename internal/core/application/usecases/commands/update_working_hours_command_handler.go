package commands

import (
	"context"

	"marketplace/internal/core/domain/model/vendor"
)

// UpdateWorkingHoursCommandHandler applies a partial edit to one day of a
// vendor's schedule and returns the full updated week.
type UpdateWorkingHoursCommandHandler struct {
	uowFactory VendorUoWFactory
}

// NewUpdateWorkingHoursCommandHandler creates a handler for schedule edits.
func NewUpdateWorkingHoursCommandHandler(uowFactory VendorUoWFactory) UpdateWorkingHoursCommandHandler {
	return UpdateWorkingHoursCommandHandler{uowFactory: uowFactory}
}

// Handle loads the vendor, overlays the day edit, persists the aggregate,
// and returns the resulting weekly schedule. An unrecognized day name fails
// before anything is written.
func (h UpdateWorkingHoursCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateWorkingHoursCommand,
) (vendor.WorkingHours, error) {
	if err := cmd.Validate(); err != nil {
		return vendor.WorkingHours{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return vendor.WorkingHours{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()
	seller, err := vendorRepo.Get(ctx, cmd.VendorID())
	if err != nil {
		return vendor.WorkingHours{}, err
	}

	if err = seller.UpdateWorkingDay(cmd.Day(), cmd.Update()); err != nil {
		return vendor.WorkingHours{}, err
	}

	if err = vendorRepo.Update(ctx, seller); err != nil {
		return vendor.WorkingHours{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return vendor.WorkingHours{}, err
	}

	return seller.WorkingHours(), nil
}
