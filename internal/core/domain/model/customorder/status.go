package customorder

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Status represents the lifecycle state of a custom order.
//
// State transitions:
//
//	Pending ──> Approved ──> Confirmed ──> InProduction ──> Completed
//	    │           │            │              │
//	    └───────────┴────────────┴──────────────┴──> Cancelled
//
// Approval is the design/price sign-off that precedes payment verification;
// confirmation follows verified payment. Completed and Cancelled are
// terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the design is submitted and awaiting
	// admin approval.
	Pending

	// Approved means the design and price were signed off. The approval
	// timestamp anchors the production lead time for delivery scheduling.
	Approved

	// Confirmed means payment was verified and production may begin.
	Confirmed

	// InProduction means the item is being made.
	InProduction

	// Completed is the terminal success status.
	Completed

	// Cancelled is the terminal failure status, reachable from any
	// non-terminal state through the cancellation workflow.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "unknown",
		Pending:      "pending",
		Approved:     "approved",
		Confirmed:    "confirmed",
		InProduction: "in_production",
		Completed:    "completed",
		Cancelled:    "cancelled",
	}
}

// nextStatus maps each non-terminal status to its single forward successor.
func nextStatus() map[Status]Status {
	return map[Status]Status{
		Pending:      Approved,
		Approved:     Confirmed,
		Confirmed:    InProduction,
		InProduction: Completed,
	}
}

// Validate checks the status is one of the defined lifecycle values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid custom order status", s))
	}
	return nil
}

// String returns the lower-case name used in persistence and API payloads.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// AdvanceTo validates a forward transition to target. Only the immediate
// successor is legal; skipping a step or moving backwards is an invalid
// transition. Cancellation is not a forward transition; see Cancel.
func (s Status) AdvanceTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if next, ok := nextStatus()[s]; ok && next == target {
		return target, nil
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%s cannot advance to %s", s.String(), target.String()),
	)
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
