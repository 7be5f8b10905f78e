package cancellation

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Status represents the resolution state of a cancellation request.
//
// State transitions:
//
//	Pending ──> Approved
//	    │
//	    └─────> Rejected
//
// Both outcomes are terminal: a request is resolved exactly once, and a
// customer who wants to try again files a new request.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the request awaits an admin decision. The order itself
	// stays confirmed; only its customer-facing presentation changes.
	Pending

	// Approved means the admin accepted the request and the order was
	// cancelled with its stock released.
	Approved

	// Rejected means the admin declined the request; the order stays
	// confirmed.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// Validate checks the status is one of Pending, Approved, Rejected.
func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid cancellation request status", s))
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

// IsResolved reports whether the request has reached a terminal status.
func (s Status) IsResolved() bool {
	return s == Approved || s == Rejected
}
