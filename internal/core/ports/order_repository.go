package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the write-side persistence contract for order
// aggregates. Listing and counting live in the query engine, which reads the
// store directly.
type OrderRepository interface {
	// Add persists a new order exactly once. Code collisions surface as a
	// unique-index violation from the storage layer.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order (soft delete, status).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its externally visible code, including
	// soft-deleted records so callers can act on them explicitly.
	Get(ctx context.Context, code kernel.OrderCode) (*order.Order, error)
}
