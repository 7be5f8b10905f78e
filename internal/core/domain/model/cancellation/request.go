package cancellation

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")
	// ErrReasonIsRequired is returned when submitting a request without a
	// reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")
	// ErrAlreadyResolved is returned when resolving a request that already
	// reached a terminal status. A repeated resolution must never touch
	// stock.
	ErrAlreadyResolved = errors.New("cancellation request is already resolved")
)

// Request is the aggregate root for a customer's cancellation request
// against a confirmed order. It mediates stock release: the order is only
// cancelled, and its stock only released, through an admin approving the
// request.
type Request struct {
	id          kernel.UUID
	orderRef    kernel.OrderRef
	orderNumber string
	reason      string
	status      Status
	adminNotes  string
	requestedAt time.Time
	resolvedAt  *time.Time

	isConstructed bool
}

// NewRequest creates a pending request as submitted by the customer.
func NewRequest(id kernel.UUID, orderRef kernel.OrderRef, orderNumber, reason string, requestedAt time.Time) (*Request, error) {
	if err := errors.Join(
		id.Validate(),
		orderRef.Validate(),
	); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if reason == "" {
		return nil, ErrReasonIsRequired
	}

	return &Request{
		id:            id,
		orderRef:      orderRef,
		orderNumber:   orderNumber,
		reason:        reason,
		status:        Pending,
		requestedAt:   requestedAt,
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(id kernel.UUID, orderRef kernel.OrderRef, orderNumber, reason string,
	status Status, adminNotes string, requestedAt time.Time, resolvedAt *time.Time,
) (*Request, error) {
	r, err := NewRequest(id, orderRef, orderNumber, reason, requestedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.adminNotes = adminNotes
	r.resolvedAt = resolvedAt
	return r, nil
}

// Validate ensures the request came through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderRef returns the tagged reference to the order under cancellation.
func (r *Request) OrderRef() kernel.OrderRef {
	return r.orderRef
}

// OrderNumber returns the customer-facing order number the request was
// filed against.
func (r *Request) OrderNumber() string {
	return r.orderNumber
}

// Reason returns the customer's stated reason.
func (r *Request) Reason() string {
	return r.reason
}

// Status returns the resolution status.
func (r *Request) Status() Status {
	return r.status
}

// AdminNotes returns the notes recorded by the resolving admin.
func (r *Request) AdminNotes() string {
	return r.adminNotes
}

// RequestedAt returns the submission time.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// ResolvedAt returns the resolution time, or nil while pending.
func (r *Request) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// Approve marks the request approved. The caller cancels the order and
// releases its stock in the same transaction, before this mutation is
// persisted; if that cancellation fails the request must stay pending.
func (r *Request) Approve(adminNotes string, resolvedAt time.Time) error {
	return r.resolve(Approved, adminNotes, resolvedAt)
}

// Reject marks the request rejected, leaving the order untouched.
func (r *Request) Reject(adminNotes string, resolvedAt time.Time) error {
	return r.resolve(Rejected, adminNotes, resolvedAt)
}

func (r *Request) resolve(target Status, adminNotes string, resolvedAt time.Time) error {
	if r.status.IsResolved() {
		return ErrAlreadyResolved
	}

	r.status = target
	r.adminNotes = adminNotes
	r.resolvedAt = &resolvedAt
	return nil
}
