// Package kernel holds the shared value objects of the marketplace domain:
// entity identifiers (UUID) and the externally visible order code (OrderCode).
//
// Both types follow the same conventions: private fields, factory constructors,
// a Validate method that rejects zero values, and IsEqual for value comparison.
// Order codes are generated from an explicit entropy source so that identifier
// generation stays a pure function and tests can substitute a deterministic
// reader.
package kernel
