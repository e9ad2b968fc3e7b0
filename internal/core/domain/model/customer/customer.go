// Package customer contains the read-only Customer identity consumed by the
// order creation workflow. Account management lives in the identity service;
// this module only needs the name snapshot and the identifier.
package customer

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the identity record of an ordering customer.
type Customer struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCustomer creates a customer identity with a valid id and non-empty name.
func NewCustomer(id kernel.UUID, name string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{id: id, name: name, isConstructed: true}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}
