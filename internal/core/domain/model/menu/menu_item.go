// Package menu contains the read-only MenuItem consumed by the order
// creation workflow. Catalog management is a separate concern; this module
// only reads price, availability, and the display name.
package menu

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a catalog entry: what it costs and whether it can be ordered.
type MenuItem struct {
	id        kernel.UUID
	vendorID  kernel.UUID
	name      string
	price     float64
	isEnabled bool

	isConstructed bool
}

// NewMenuItem creates a catalog entry with a non-negative price.
func NewMenuItem(id, vendorID kernel.UUID, name string, price float64, isEnabled bool) (*MenuItem, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is negative", price))
	}

	return &MenuItem{
		id:            id,
		vendorID:      vendorID,
		name:          name,
		price:         price,
		isEnabled:     isEnabled,
		isConstructed: true,
	}, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// VendorID returns the owning vendor's identifier.
func (m *MenuItem) VendorID() kernel.UUID {
	return m.vendorID
}

// Name returns the display name shown to customers.
func (m *MenuItem) Name() string {
	return m.name
}

// Price returns the current catalog price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// IsEnabled reports whether the item can currently be ordered.
func (m *MenuItem) IsEnabled() bool {
	return m.isEnabled
}
