package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
)

// CustomerRepository is the read-only view of customer identity this module
// consumes. A missing customer yields errs.ErrObjectNotFound — by the time
// an order reaches the core the caller has been authenticated, so absence
// points at an upstream session defect rather than user error.
type CustomerRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

// MenuItemRepository is the read-only view of the menu catalog. A missing
// item yields errs.ErrObjectNotFound.
type MenuItemRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}
