// Package services contains stateless domain services that encode business
// policy spanning more than one aggregate.
package services

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultMaxPerDay is the delivery capacity ceiling per calendar day.
	DefaultMaxPerDay = 3

	// DefaultProductionLeadDays is the number of days a custom order spends
	// in production before it can be delivered.
	DefaultProductionLeadDays = 10
)

// Policy errors surfaced to the scheduling use case.
var (
	// ErrCapacityExceeded is returned when a day already holds the maximum
	// number of active deliveries.
	ErrCapacityExceeded = errors.New("delivery capacity exceeded for the requested date")
	// ErrTooEarly is returned when a custom order's delivery date falls
	// inside its production lead time.
	ErrTooEarly = errors.New("delivery date is inside the production lead time")
)

// SchedulingPolicy encodes the calendar rules for delivery scheduling: the
// hard per-day capacity ceiling, and the production lead time for custom
// orders. Lead-time enforcement is a deploy-time flag because the store has
// run with it both on and off.
type SchedulingPolicy struct {
	maxPerDay          int
	productionLeadDays int
	enforceLeadTime    bool
}

// NewSchedulingPolicy creates a policy. Non-positive limits fall back to
// the defaults.
func NewSchedulingPolicy(maxPerDay, productionLeadDays int, enforceLeadTime bool) SchedulingPolicy {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	if productionLeadDays <= 0 {
		productionLeadDays = DefaultProductionLeadDays
	}

	return SchedulingPolicy{
		maxPerDay:          maxPerDay,
		productionLeadDays: productionLeadDays,
		enforceLeadTime:    enforceLeadTime,
	}
}

// MaxPerDay returns the per-day capacity ceiling.
func (p SchedulingPolicy) MaxPerDay() int {
	return p.maxPerDay
}

// CheckCapacity validates that a day holding activeCount deliveries can
// take one more. The count must come from a locked read in the same
// transaction as the booking.
func (p SchedulingPolicy) CheckCapacity(activeCount int) error {
	if activeCount >= p.maxPerDay {
		return fmt.Errorf("%w: %d of %d slots taken", ErrCapacityExceeded, activeCount, p.maxPerDay)
	}
	return nil
}

// EarliestCustomDeliveryDate returns the first calendar day a custom order
// approved at approvedAt may be delivered.
func (p SchedulingPolicy) EarliestCustomDeliveryDate(approvedAt time.Time) time.Time {
	year, month, day := approvedAt.UTC().Date()
	approvedDay := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return approvedDay.AddDate(0, 0, p.productionLeadDays)
}

// CheckLeadTime validates a custom order's delivery date against its
// production lead time. It is a no-op when enforcement is disabled.
func (p SchedulingPolicy) CheckLeadTime(approvedAt, deliveryDate time.Time) error {
	if !p.enforceLeadTime {
		return nil
	}

	earliest := p.EarliestCustomDeliveryDate(approvedAt)
	if deliveryDate.Before(earliest) {
		return fmt.Errorf("%w: earliest date is %s", ErrTooEarly, earliest.Format("2006-01-02"))
	}
	return nil
}
