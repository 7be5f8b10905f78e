// Package cancellation provides the cancellation request aggregate.
//
// A request is the only path by which a confirmed order becomes cancelled:
// the customer submits a reason, an admin approves or rejects, and both
// outcomes are terminal. Approval drives the order cancellation and stock
// release in the same transaction; a request that cannot cancel its order
// stays pending.
package cancellation
