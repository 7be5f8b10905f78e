// Package customorder provides the aggregate and state machine for
// made-to-order items.
//
// Custom orders differ from regular orders in two ways: a design/price
// approval step precedes payment verification, and their items are produced
// per order, outside the shared stock ledger. The approval timestamp is the
// anchor for the delivery scheduler's production lead-time rule.
package customorder
