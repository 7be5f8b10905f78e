// Package errs provides standardized error types for the storefront core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain packages layer their own sentinels (insufficient stock, capacity
// exceeded, invalid transitions) on top of these building blocks.
package errs
