package commands

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var ErrAdvanceCustomOrderCommandIsNotConstructed = errors.New(
	"AdvanceCustomOrderCommand must be created via NewAdvanceCustomOrderCommand constructor",
)

// AdvanceCustomOrderCommand represents a request to move a custom order
// one step along its production lifecycle.
type AdvanceCustomOrderCommand struct { //nolint:recvcheck //using for validation
	customOrderID kernel.UUID
	target        customorder.Status

	guard guard.ConstructorGuard
}

// NewAdvanceCustomOrderCommand creates a command to advance a custom
// order. Validates the order ID and that the target is a known status.
func NewAdvanceCustomOrderCommand(
	customOrderID kernel.UUID,
	target customorder.Status,
) (AdvanceCustomOrderCommand, error) {
	command := AdvanceCustomOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomOrderID(customOrderID),
		command.setTarget(target),
	); err != nil {
		return AdvanceCustomOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceCustomOrderCommandIsNotConstructed if validation fails.
func (c AdvanceCustomOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceCustomOrderCommandIsNotConstructed)
}

// CustomOrderID returns the unique identifier of the custom order.
func (c AdvanceCustomOrderCommand) CustomOrderID() kernel.UUID {
	return c.customOrderID
}

// Target returns the status the custom order should move to.
func (c AdvanceCustomOrderCommand) Target() customorder.Status {
	return c.target
}

func (c *AdvanceCustomOrderCommand) setCustomOrderID(customOrderID kernel.UUID) error {
	if err := customOrderID.Validate(); err != nil {
		return err
	}

	c.customOrderID = customOrderID
	return nil
}

func (c *AdvanceCustomOrderCommand) setTarget(target customorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
