package commands

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// ItemRequest is one requested order line: which menu item and how many.
// Prices are never accepted from the caller; they are resolved from the
// catalog during handling.
type ItemRequest struct {
	MenuItemID kernel.UUID
	Quantity   int
}

// CreateOrderCommand represents a customer's request to place an order
// against a vendor. The customer id comes from the authenticated session,
// never from client-supplied payload fields.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	vendorID    kernel.UUID
	phoneNumber string
	delivery    order.Delivery
	items       []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the phone number, the delivery type, and that every
// requested line references a menu item with a positive quantity.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	vendorID kernel.UUID,
	phoneNumber string,
	delivery order.Delivery,
	items []ItemRequest,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setVendorID(vendorID),
		cmd.setPhoneNumber(phoneNumber),
		cmd.setDelivery(delivery),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the authenticated customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VendorID returns the vendor the order targets.
func (c CreateOrderCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// PhoneNumber returns the contact number to snapshot onto the order.
func (c CreateOrderCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Delivery returns the delivery metadata.
func (c CreateOrderCommand) Delivery() order.Delivery {
	return c.delivery
}

// Items returns the requested lines in submission order.
func (c CreateOrderCommand) Items() []ItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *CreateOrderCommand) setPhoneNumber(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	c.phoneNumber = phone
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.Delivery) error {
	if delivery.Type == "" {
		return errs.NewValueIsRequiredError("deliveryType")
	}
	c.delivery = delivery
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.MenuItemID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}
	c.items = items
	return nil
}
