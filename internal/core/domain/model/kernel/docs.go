// Package kernel provides core domain primitives shared across the
// storefront domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - OrderKind / OrderRef: a tagged reference to a regular or custom order
//
// These primitives are immutable and thread-safe. OrderRef exists so that
// cross-aggregate references (cancellation requests, delivery schedules)
// carry the order type explicitly; nothing downstream of the HTTP boundary
// ever re-derives the type from an order number pattern.
package kernel
