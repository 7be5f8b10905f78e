// Package delivery provides the delivery schedule aggregate and its status
// state machine.
//
// Key business rules:
//   - one schedule per order; rescheduling mutates the existing booking
//   - scheduled and in-transit deliveries occupy a slot in their day's
//     capacity; delayed, delivered, and cancelled ones do not
//   - delivered and cancelled are terminal; a delayed delivery re-enters
//     the calendar only through Reschedule
//   - this aggregate is the single writer of delivery status
package delivery
