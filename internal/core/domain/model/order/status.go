package order

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Status represents the lifecycle state of a regular order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Cancelled
//
// Confirmation reserves stock, cancellation releases it, and Cancelled is
// terminal. Cancellation is reachable only from Confirmed; pre-confirmation
// cancellation is handled outside this core. Repeating a transition is an
// invalid-state error, never a double stock mutation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status after checkout, before the admin has
	// confirmed payment.
	Pending

	// Confirmed means payment was verified and stock is reserved for every
	// line item.
	Confirmed

	// Cancelled is the terminal status; reserved stock has been released.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Confirmed: "confirmed",
		Cancelled: "cancelled",
	}
}

// Validate checks that the status is one of Pending, Confirmed, Cancelled.
func (s Status) Validate() error {
	if s != Pending && s != Confirmed && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid order status", s))
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

// Confirm transitions Pending to Confirmed. Any other starting status is an
// invalid transition, including Confirmed itself: repeated confirmation must
// surface as an error so stock is never reserved twice.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Cancel transitions Confirmed to Cancelled. Cancelling a pending or
// already-cancelled order is an invalid transition; the latter keeps a
// repeated approval from releasing stock twice.
func (s Status) Cancel() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
