package commands

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var (
	ErrResolveCancellationCommandIsNotConstructed = errors.New(
		"ResolveCancellationCommand must be created via NewResolveCancellationCommand constructor",
	)
	ErrDecisionIsInvalid = errors.New("decision must be approve or reject")
)

// Decision is the administrator's verdict on a cancellation request.
type Decision int

const (
	UnknownDecision Decision = iota
	DecisionApprove
	DecisionReject
)

// Validate checks the decision is one of the known verdicts.
func (d Decision) Validate() error {
	if d != DecisionApprove && d != DecisionReject {
		return ErrDecisionIsInvalid
	}
	return nil
}

// ResolveCancellationCommand represents an administrator's verdict on a
// pending cancellation request. Approval cancels the order and returns
// its stock; rejection leaves the order untouched.
type ResolveCancellationCommand struct { //nolint:recvcheck //using for validation
	requestID  kernel.UUID
	decision   Decision
	adminNotes string

	guard guard.ConstructorGuard
}

// NewResolveCancellationCommand creates a command to resolve a
// cancellation request. Validates the request ID and the decision; notes
// are optional.
func NewResolveCancellationCommand(
	requestID kernel.UUID,
	decision Decision,
	adminNotes string,
) (ResolveCancellationCommand, error) {
	command := ResolveCancellationCommand{
		adminNotes: adminNotes,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(requestID),
		command.setDecision(decision),
	); err != nil {
		return ResolveCancellationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrResolveCancellationCommandIsNotConstructed if validation fails.
func (c ResolveCancellationCommand) Validate() error {
	return c.guard.Validate(ErrResolveCancellationCommandIsNotConstructed)
}

// RequestID returns the unique identifier of the cancellation request.
func (c ResolveCancellationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Decision returns the administrator's verdict.
func (c ResolveCancellationCommand) Decision() Decision {
	return c.decision
}

// AdminNotes returns the administrator's free-form notes.
func (c ResolveCancellationCommand) AdminNotes() string {
	return c.adminNotes
}

func (c *ResolveCancellationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ResolveCancellationCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
