// Package order contains the Order aggregate: a customer's purchase from one
// vendor, with its line-item snapshots, computed total, lifecycle status, and
// soft-delete flag. Orders are created exclusively through NewOrder by the
// order creation workflow; status transitions after the initial "pending"
// value belong to the fulfilment workflow outside this module.
package order
