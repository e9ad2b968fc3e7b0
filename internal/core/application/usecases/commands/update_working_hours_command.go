package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateWorkingHoursCommandIsNotConstructed = errors.New(
	"UpdateWorkingHoursCommand must be created via NewUpdateWorkingHoursCommand constructor",
)

// UpdateWorkingHoursCommand edits one day of a vendor's weekly schedule.
// Only the fields present in the update change; whether the day name is
// recognized is decided by the aggregate against its schedule.
type UpdateWorkingHoursCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	day      string
	update   vendor.DayUpdate

	guard guard.ConstructorGuard
}

// NewUpdateWorkingHoursCommand creates a command to edit a single schedule day.
func NewUpdateWorkingHoursCommand(
	vendorID kernel.UUID,
	day string,
	update vendor.DayUpdate,
) (UpdateWorkingHoursCommand, error) {
	if err := vendorID.Validate(); err != nil {
		return UpdateWorkingHoursCommand{}, err
	}
	if day == "" {
		return UpdateWorkingHoursCommand{}, errs.NewValueIsRequiredError("day")
	}

	return UpdateWorkingHoursCommand{
		vendorID: vendorID,
		day:      day,
		update:   update,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateWorkingHoursCommand) Validate() error {
	return c.guard.Validate(ErrUpdateWorkingHoursCommandIsNotConstructed)
}

// VendorID returns the vendor whose schedule changes.
func (c UpdateWorkingHoursCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Day returns the targeted day name as submitted (matched case-insensitively).
func (c UpdateWorkingHoursCommand) Day() string {
	return c.day
}

// Update returns the partial day edit.
func (c UpdateWorkingHoursCommand) Update() vendor.DayUpdate {
	return c.update
}
