package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSyncStoreHoursCommandIsNotConstructed = errors.New(
	"SyncStoreHoursCommand must be created via NewSyncStoreHoursCommand constructor",
)

// SyncStoreHoursCommand reconciles every vendor's store-open flag with its
// weekly schedule at a given instant. Vendors whose schedule marks the day
// inactive are left under manual control.
type SyncStoreHoursCommand struct { //nolint:recvcheck //using for validation
	at time.Time

	guard guard.ConstructorGuard
}

// NewSyncStoreHoursCommand creates a command to reconcile store state at the
// given instant, typically time.Now() from the scheduler tick.
func NewSyncStoreHoursCommand(at time.Time) (SyncStoreHoursCommand, error) {
	if at.IsZero() {
		return SyncStoreHoursCommand{}, errs.NewValueIsRequiredError("at")
	}

	return SyncStoreHoursCommand{
		at:    at,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncStoreHoursCommand) Validate() error {
	return c.guard.Validate(ErrSyncStoreHoursCommandIsNotConstructed)
}

// At returns the instant the schedules are evaluated against.
func (c SyncStoreHoursCommand) At() time.Time {
	return c.at
}
