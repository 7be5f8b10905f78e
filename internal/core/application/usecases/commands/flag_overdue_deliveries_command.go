package commands

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var (
	ErrFlagOverdueDeliveriesCommandIsNotConstructed = errors.New(
		"FlagOverdueDeliveriesCommand must be created via NewFlagOverdueDeliveriesCommand constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// FlagOverdueDeliveriesCommand represents a sweep that marks schedules
// still waiting past their delivery date as delayed. Run periodically by
// the background job.
type FlagOverdueDeliveriesCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewFlagOverdueDeliveriesCommand creates a command to sweep overdue
// schedules. asOf is the current time; schedules dated before that day
// are considered overdue.
func NewFlagOverdueDeliveriesCommand(asOf time.Time) (FlagOverdueDeliveriesCommand, error) {
	command := FlagOverdueDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAsOf(asOf); err != nil {
		return FlagOverdueDeliveriesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFlagOverdueDeliveriesCommandIsNotConstructed if validation fails.
func (c FlagOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrFlagOverdueDeliveriesCommandIsNotConstructed)
}

// AsOf returns the reference time for the sweep.
func (c FlagOverdueDeliveriesCommand) AsOf() time.Time {
	return c.asOf
}

func (c *FlagOverdueDeliveriesCommand) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return ErrAsOfIsRequired
	}

	c.asOf = asOf
	return nil
}
