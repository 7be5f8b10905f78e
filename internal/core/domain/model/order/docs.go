// Package order provides the aggregate and state machine for regular
// catalog orders.
//
// The package includes:
//   - Order: the aggregate root holding identity, line items, and status
//   - Item: an immutable product/quantity line fixed at checkout
//   - Status: the Pending -> Confirmed -> Cancelled state machine
//
// Key business rules:
//   - confirmation is only valid from Pending, cancellation only from
//     Confirmed; repeats surface as invalid-state errors so stock is never
//     reserved or released twice
//   - the stock mutation itself belongs to the product aggregate; this
//     package only decides whether the transition is legal
package order
