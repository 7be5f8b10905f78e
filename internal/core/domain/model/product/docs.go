// Package product implements the stock ledger aggregate.
//
// The package includes:
//   - Product: the aggregate root owning the per-product stock counters
//   - StockStatus: display status derived from the available counter
//
// Key business rules:
//   - available + reserved never exceeds total stock; both counters stay >= 0
//   - Reserve fails atomically with InsufficientStockError when short
//   - Release is clamped at the reserved count (defensive floor at zero)
//   - all counter mutation flows through this aggregate; no other code
//     touches the columns directly
package product
