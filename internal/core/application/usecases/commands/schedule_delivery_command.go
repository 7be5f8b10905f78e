package commands

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var (
	ErrScheduleDeliveryCommandIsNotConstructed = errors.New(
		"ScheduleDeliveryCommand must be created via NewScheduleDeliveryCommand constructor",
	)
	ErrDeliveryDateIsRequired = errors.New("delivery date is required")
	ErrTimeSlotIsRequired     = errors.New("time slot is required")
)

// ScheduleDeliveryCommand represents a request to book or rebook a
// delivery slot for an order. An order holds at most one schedule;
// booking an order that already has one moves the existing schedule.
type ScheduleDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderRef     kernel.OrderRef
	deliveryDate time.Time
	timeSlot     string
	notes        string
	courierID    *kernel.UUID

	guard guard.ConstructorGuard
}

// NewScheduleDeliveryCommand creates a command to book a delivery slot.
// Validates the order reference, date, and time slot; notes and the
// courier are optional.
func NewScheduleDeliveryCommand(
	orderRef kernel.OrderRef,
	deliveryDate time.Time,
	timeSlot string,
	notes string,
	courierID *kernel.UUID,
) (ScheduleDeliveryCommand, error) {
	command := ScheduleDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderRef(orderRef),
		command.setDeliveryDate(deliveryDate),
		command.setTimeSlot(timeSlot),
		command.setCourierID(courierID),
	); err != nil {
		return ScheduleDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrScheduleDeliveryCommandIsNotConstructed if validation fails.
func (c ScheduleDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to schedule.
func (c ScheduleDeliveryCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

// DeliveryDate returns the requested calendar day.
func (c ScheduleDeliveryCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// TimeSlot returns the requested slot label within the day.
func (c ScheduleDeliveryCommand) TimeSlot() string {
	return c.timeSlot
}

// Notes returns the optional free-form delivery notes.
func (c ScheduleDeliveryCommand) Notes() string {
	return c.notes
}

// CourierID returns the courier to assign at booking time, or nil when
// assignment is deferred to a separate call.
func (c ScheduleDeliveryCommand) CourierID() *kernel.UUID {
	return c.courierID
}

func (c *ScheduleDeliveryCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *ScheduleDeliveryCommand) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return ErrDeliveryDateIsRequired
	}

	c.deliveryDate = deliveryDate
	return nil
}

func (c *ScheduleDeliveryCommand) setTimeSlot(timeSlot string) error {
	if timeSlot == "" {
		return ErrTimeSlotIsRequired
	}

	c.timeSlot = timeSlot
	return nil
}

func (c *ScheduleDeliveryCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
