package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. Every order starts in
// Pending; later transitions are driven by the fulfilment workflow outside
// this module, so Status only offers validation and string conversion here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned to every newly created order.
	Pending

	// Accepted indicates the vendor has confirmed the order.
	Accepted

	// Preparing indicates the vendor is preparing the order.
	Preparing

	// Completed indicates the order has been fulfilled.
	Completed

	// Cancelled indicates the order was cancelled before fulfilment.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Preparing: "preparing",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Preparing: "preparing",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Validate checks that the Status is one of the enumerated values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
