package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand soft-deletes an order on behalf of the vendor it was
// placed against. An order belonging to another vendor is reported as not
// found rather than forbidden, so codes cannot be probed across vendors.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderCode kernel.OrderCode
	vendorID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to soft-delete a vendor's order.
func NewRemoveOrderCommand(orderCode kernel.OrderCode, vendorID kernel.UUID) (RemoveOrderCommand, error) {
	if err := errors.Join(
		orderCode.Validate(),
		vendorID.Validate(),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return RemoveOrderCommand{
		orderCode: orderCode,
		vendorID:  vendorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderCode returns the code of the order to remove.
func (c RemoveOrderCommand) OrderCode() kernel.OrderCode {
	return c.orderCode
}

// VendorID returns the vendor acting on the order.
func (c RemoveOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}
