// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: a referenced customer, vendor, order, or menu item does not exist
//   - StateIsInvalidError: the operation is forbidden by the object's current state
//   - ValueIsInvalidError: a supplied value is malformed or unrecognized
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed range
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them onto status codes (not found 404, invalid state 409,
// invalid input 422).
package errs
