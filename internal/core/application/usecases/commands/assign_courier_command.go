package commands

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand represents a request to put a courier on a
// delivery schedule.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	scheduleID kernel.UUID
	courierID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to a
// schedule. Validates both identifiers.
func NewAssignCourierCommand(scheduleID, courierID kernel.UUID) (AssignCourierCommand, error) {
	command := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setScheduleID(scheduleID),
		command.setCourierID(courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// ScheduleID returns the unique identifier of the delivery schedule.
func (c AssignCourierCommand) ScheduleID() kernel.UUID {
	return c.scheduleID
}

// CourierID returns the unique identifier of the courier to assign.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignCourierCommand) setScheduleID(scheduleID kernel.UUID) error {
	if err := scheduleID.Validate(); err != nil {
		return err
	}

	c.scheduleID = scheduleID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
