package courier

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Status represents a courier's availability for new assignments.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active couriers may be assigned to delivery schedules.
	Active

	// Inactive couriers keep their existing schedules but take no new
	// assignments.
	Inactive
)

// Validate checks the status is Active or Inactive.
func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// String returns "active", "inactive", or "unknown".
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Inactive:
		return "inactive"
	default:
		return "unknown"
	}
}
