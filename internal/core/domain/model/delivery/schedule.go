package delivery

import (
	"errors"
	"fmt"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

var (
	// ErrScheduleIsNotConstructed is returned when a Schedule was not created
	// through NewSchedule or RestoreSchedule.
	ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule or RestoreSchedule")
	// ErrNotReschedulable is returned when rescheduling a delivery that is
	// neither scheduled nor delayed.
	ErrNotReschedulable = errors.New("delivery can only be rescheduled while scheduled or delayed")
)

// Schedule is the aggregate root for an order's delivery booking. Exactly
// one schedule exists per order: rescheduling mutates this row rather than
// inserting another, which is what keeps the per-day capacity count honest.
//
// The schedule is the single writer of delivery status; order aggregates
// never carry their own copy, so order status and delivery status cannot
// drift apart.
type Schedule struct {
	id           kernel.UUID
	orderRef     kernel.OrderRef
	deliveryDate time.Time
	timeSlot     string
	status       Status
	courierID    *kernel.UUID
	notes        string

	isConstructed bool
}

// NewSchedule books a delivery for an order, entering the calendar in
// Scheduled status. The date is normalized to midnight UTC; the optional
// time slot keeps the finer granularity. The caller enforces the per-day
// capacity and lead-time policies before constructing the schedule.
func NewSchedule(id kernel.UUID, orderRef kernel.OrderRef, deliveryDate time.Time, timeSlot string) (*Schedule, error) {
	if err := errors.Join(
		id.Validate(),
		orderRef.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryDate.IsZero() {
		return nil, errs.NewValueIsRequiredError("deliveryDate")
	}

	return &Schedule{
		id:            id,
		orderRef:      orderRef,
		deliveryDate:  normalizeDate(deliveryDate),
		timeSlot:      timeSlot,
		status:        Scheduled,
		isConstructed: true,
	}, nil
}

// RestoreSchedule reconstructs a schedule from persistence.
func RestoreSchedule(id kernel.UUID, orderRef kernel.OrderRef, deliveryDate time.Time,
	timeSlot string, status Status, courierID *kernel.UUID, notes string,
) (*Schedule, error) {
	s, err := NewSchedule(id, orderRef, deliveryDate, timeSlot)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.courierID = courierID
	s.notes = notes
	return s, nil
}

// normalizeDate truncates a timestamp to its calendar day in UTC so
// capacity counting groups schedules by day regardless of booking time.
func normalizeDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Validate ensures the schedule came through a constructor.
func (s *Schedule) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}

// ID returns the schedule identifier.
func (s *Schedule) ID() kernel.UUID {
	return s.id
}

// OrderRef returns the tagged reference to the scheduled order.
func (s *Schedule) OrderRef() kernel.OrderRef {
	return s.orderRef
}

// DeliveryDate returns the calendar day of the delivery (midnight UTC).
func (s *Schedule) DeliveryDate() time.Time {
	return s.deliveryDate
}

// TimeSlot returns the optional within-day slot, empty when unset.
func (s *Schedule) TimeSlot() string {
	return s.timeSlot
}

// Status returns the delivery status.
func (s *Schedule) Status() Status {
	return s.status
}

// CourierID returns the assigned courier, or nil when unassigned.
func (s *Schedule) CourierID() *kernel.UUID {
	return s.courierID
}

// Notes returns the free-form delivery notes.
func (s *Schedule) Notes() string {
	return s.notes
}

// SetNotes replaces the delivery notes.
func (s *Schedule) SetNotes(notes string) {
	s.notes = notes
}

// Advance moves the delivery to target following the status state machine.
func (s *Schedule) Advance(target Status) error {
	newStatus, err := s.status.Advance(target)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Reschedule moves a scheduled or delayed delivery to a new date and slot,
// putting it back into Scheduled status. This is the only way a delayed
// delivery re-enters the calendar.
func (s *Schedule) Reschedule(deliveryDate time.Time, timeSlot string) error {
	if s.status != Scheduled && s.status != Delayed {
		return fmt.Errorf("%w: status is %s", ErrNotReschedulable, s.status)
	}
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}

	s.deliveryDate = normalizeDate(deliveryDate)
	s.timeSlot = timeSlot
	s.status = Scheduled
	return nil
}

// AssignCourier records the courier responsible for the delivery. The
// caller verifies the courier is active; assignment is legal in any
// non-terminal status.
func (s *Schedule) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to assign a courier", s.status))
	}

	s.courierID = &courierID
	return nil
}
