package commands

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var (
	ErrSubmitCancellationCommandIsNotConstructed = errors.New(
		"SubmitCancellationCommand must be created via NewSubmitCancellationCommand constructor",
	)
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")
)

// SubmitCancellationCommand represents a customer's request to cancel an
// order. Submission only records the request; the order itself changes
// when an administrator resolves it.
type SubmitCancellationCommand struct { //nolint:recvcheck //using for validation
	orderRef kernel.OrderRef
	reason   string

	guard guard.ConstructorGuard
}

// NewSubmitCancellationCommand creates a command to file a cancellation
// request. Validates that the order reference is constructed and the
// reason is not empty.
func NewSubmitCancellationCommand(orderRef kernel.OrderRef, reason string) (SubmitCancellationCommand, error) {
	command := SubmitCancellationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderRef(orderRef),
		command.setReason(reason),
	); err != nil {
		return SubmitCancellationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitCancellationCommandIsNotConstructed if validation fails.
func (c SubmitCancellationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitCancellationCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to cancel.
func (c SubmitCancellationCommand) OrderRef() kernel.OrderRef {
	return c.orderRef
}

// Reason returns the customer's stated reason for cancelling.
func (c SubmitCancellationCommand) Reason() string {
	return c.reason
}

func (c *SubmitCancellationCommand) setOrderRef(orderRef kernel.OrderRef) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *SubmitCancellationCommand) setReason(reason string) error {
	if reason == "" {
		return ErrCancellationReasonIsRequired
	}

	c.reason = reason
	return nil
}
