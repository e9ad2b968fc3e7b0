package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Item is an order line: a snapshot of one menu item at order time.
// The name and unit price are copied from the catalog when the order is
// placed and never follow later menu edits.
type Item struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  float64
	quantity   int

	isConstructed bool
}

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// NewItem creates a validated order line. The unit price must be
// non-negative and the quantity positive.
func NewItem(menuItemID kernel.UUID, name string, unitPrice float64, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item's display name at order time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the menu item's price at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%v is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
