package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor by id. A missing vendor yields
	// errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)

	// GetAll retrieves every vendor. Used by the store-schedule job.
	GetAll(ctx context.Context) ([]*vendor.Vendor, error)
}
