// Package courier provides the courier aggregate.
//
// Couriers are assigned to delivery schedules by an admin. A courier may
// hold many concurrent schedules; the only assignment rule is that the
// courier must be active.
package courier
