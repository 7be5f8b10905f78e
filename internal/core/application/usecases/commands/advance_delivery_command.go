package commands

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
	"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
)

// AdvanceDeliveryCommand represents a request to move a delivery
// schedule to a new status along its lifecycle.
type AdvanceDeliveryCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates a command to advance a schedule.
// Validates the schedule ID and that the target is a known status.
func NewAdvanceDeliveryCommand(scheduleID kernel.UUID, target delivery.Status) (AdvanceDeliveryCommand, error) {
	command := AdvanceDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setScheduleID(scheduleID),
		command.setTarget(target),
	); err != nil {
		return AdvanceDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveryCommandIsNotConstructed if validation fails.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// ScheduleID returns the unique identifier of the schedule to advance.
func (c AdvanceDeliveryCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// Target returns the status the schedule should move to.
func (c AdvanceDeliveryCommand) Target() delivery.Status {
	return c.target
}

func (c *AdvanceDeliveryCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *AdvanceDeliveryCommand) setTarget(target delivery.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
