package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Contact is the denormalized snapshot of the customer's contact details at
// order time. It does not track later profile changes.
type Contact struct {
	Name  string
	Phone string
}

// Delivery carries the delivery metadata supplied by the customer. The fields
// are validated upstream and opaque to this aggregate beyond the type being
// required.
type Delivery struct {
	Type     string
	Location string
	Address  string
	Notes    string
}

// Order is the aggregate root for a customer's purchase from one vendor.
//
// Invariants:
//   - code, customer, and vendor identifiers are valid and immutable
//   - the item list is non-empty and every line was validated via NewItem
//   - totalAmount is computed from the lines, never supplied by callers
//   - status starts as Pending; later transitions happen outside this module
//   - isDeleted marks logical removal; the record is never physically erased here
type Order struct {
	code       kernel.OrderCode
	customerID kernel.UUID
	vendorID   kernel.UUID

	contact  Contact
	delivery Delivery

	items       []Item
	totalAmount float64

	status    Status
	isDeleted bool
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates a new pending order. The total amount is derived from the
// item snapshots; createdAt is stamped here, immediately before persistence.
func NewOrder(
	code kernel.OrderCode,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	contact Contact,
	delivery Delivery,
	items []Item,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setCode(code),
		order.setCustomerID(customerID),
		order.setVendorID(vendorID),
		order.setContact(contact),
		order.setDelivery(delivery),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// creation-time rules. The stored values are trusted; only structural
// validity is checked.
func RestoreOrder(
	code kernel.OrderCode,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	contact Contact,
	delivery Delivery,
	items []Item,
	totalAmount float64,
	status Status,
	isDeleted bool,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		code.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	return &Order{
		code:          code,
		customerID:    customerID,
		vendorID:      vendorID,
		contact:       contact,
		delivery:      delivery,
		items:         items,
		totalAmount:   totalAmount,
		status:        status,
		isDeleted:     isDeleted,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order codes.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.code.IsEqual(other.code)
}

// Code returns the externally visible order identifier.
func (o *Order) Code() kernel.OrderCode {
	return o.code
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the vendor the order was placed against.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Contact returns the customer contact snapshot taken at order time.
func (o *Order) Contact() Contact {
	return o.contact
}

// Delivery returns the delivery metadata.
func (o *Order) Delivery() Delivery {
	return o.delivery
}

// Items returns the order lines in submission order.
func (o *Order) Items() []Item {
	return o.items
}

// TotalAmount returns the computed sum of price times quantity over all lines.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

// CreatedAt returns the creation timestamp used for sorting and range filters.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkRemoved soft-deletes the order. Removal is idempotent and never erases
// the record; listings exclude removed orders.
func (o *Order) MarkRemoved() {
	o.isDeleted = true
}

func (o *Order) setCode(code kernel.OrderCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.vendorID = id
	return nil
}

func (o *Order) setContact(contact Contact) error {
	if contact.Name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if contact.Phone == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	o.contact = contact
	return nil
}

func (o *Order) setDelivery(delivery Delivery) error {
	if delivery.Type == "" {
		return errs.NewValueIsRequiredError("delivery type")
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = items
	o.totalAmount = total
	return nil
}
