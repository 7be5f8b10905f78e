package delivery

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Status represents the state of a delivery schedule.
//
// State transitions:
//
//	Scheduled ──> InTransit ──> Delivered
//	    │   │         │  │
//	    │   └─────────┼──┴────> Delayed ──(reschedule)──> Scheduled
//	    │             │            │
//	    └─────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. A delayed delivery leaves the
// capacity count for its original date and re-enters the calendar only
// through a fresh scheduling call.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Scheduled means the delivery holds a slot on the calendar.
	Scheduled

	// InTransit means the courier is out with the package.
	InTransit

	// Delivered is the terminal success status.
	Delivered

	// Delayed means the delivery missed its slot; it no longer counts
	// against any day's capacity until rescheduled.
	Delayed

	// Cancelled is the terminal failure status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Scheduled: "scheduled",
		InTransit: "in_transit",
		Delivered: "delivered",
		Delayed:   "delayed",
		Cancelled: "cancelled",
	}
}

// Validate checks the status is one of the defined delivery states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid delivery status", s))
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
	return s == Delivered || s == Cancelled
}

// CountsTowardCapacity reports whether a schedule in this status occupies a
// slot in its day's delivery capacity.
func (s Status) CountsTowardCapacity() bool {
	return s == Scheduled || s == InTransit
}

// Advance validates a transition to target:
//
//	Scheduled -> InTransit | Delivered | Delayed | Cancelled
//	InTransit -> Delivered | Delayed | Cancelled
//	Delayed   -> Cancelled
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	legal := false
	switch target {
	case InTransit:
		legal = s == Scheduled
	case Delivered, Delayed:
		legal = s == Scheduled || s == InTransit
	case Cancelled:
		legal = !s.IsTerminal() && s != Unknown && s.Validate() == nil
	case Scheduled, Unknown:
		// re-entering the calendar goes through Schedule.Reschedule, not
		// Advance
	}

	if !legal {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot advance to %s", s.String(), target.String()),
		)
	}
	return target, nil
}
