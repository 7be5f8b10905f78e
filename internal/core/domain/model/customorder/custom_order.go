package customorder

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

var (
	// ErrCustomOrderIsNotConstructed is returned when a CustomOrder was not
	// created through NewCustomOrder or RestoreCustomOrder.
	ErrCustomOrderIsNotConstructed = errors.New("CustomOrder must be created via NewCustomOrder or RestoreCustomOrder")
	// ErrOrderNumberIsRequired is returned when creating a custom order
	// without an order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrNotYetApproved is returned when an operation needs the approval
	// timestamp of an order that has never been approved.
	ErrNotYetApproved = errors.New("custom order has not been approved")
)

// CustomOrder is the aggregate root for a made-to-order item. Unlike a
// regular order it carries a design approval step before payment
// verification and a production phase afterwards; its items are produced
// per order and never drawn from shared stock, so the stock ledger is not
// involved in its lifecycle.
type CustomOrder struct {
	id          kernel.UUID
	orderNumber string
	userID      kernel.UUID
	status      Status
	approvedAt  *time.Time

	isConstructed bool
}

// NewCustomOrder creates a pending custom order as produced by the design
// intake.
func NewCustomOrder(id kernel.UUID, orderNumber string, userID kernel.UUID) (*CustomOrder, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberIsRequired
	}

	return &CustomOrder{
		id:            id,
		orderNumber:   orderNumber,
		userID:        userID,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreCustomOrder reconstructs a custom order from persistence. An order
// past the approval step must carry its approval timestamp.
func RestoreCustomOrder(id kernel.UUID, orderNumber string, userID kernel.UUID, status Status, approvedAt *time.Time) (*CustomOrder, error) {
	o, err := NewCustomOrder(id, orderNumber, userID)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	o.approvedAt = approvedAt
	return o, nil
}

// Validate ensures the custom order came through a constructor.
func (o *CustomOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrCustomOrderIsNotConstructed
	}
	return nil
}

// ID returns the custom order identifier.
func (o *CustomOrder) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the customer-facing order number (CUSTOM- prefixed at
// the boundary).
func (o *CustomOrder) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the owning customer's identifier.
func (o *CustomOrder) UserID() kernel.UUID {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *CustomOrder) Status() Status {
	return o.status
}

// ApprovedAt returns the design approval timestamp, or nil before approval.
func (o *CustomOrder) ApprovedAt() *time.Time {
	return o.approvedAt
}

// Ref returns the tagged reference other aggregates use to point at this
// order.
func (o *CustomOrder) Ref() (kernel.OrderRef, error) {
	return kernel.NewOrderRef(kernel.CustomOrder, o.id)
}

// AdvanceTo moves the order one step forward in its lifecycle. Advancing to
// Approved stamps the approval time that the delivery scheduler's
// production lead-time rule anchors on.
func (o *CustomOrder) AdvanceTo(target Status, now time.Time) error {
	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Approved {
		approvedAt := now
		o.approvedAt = &approvedAt
	}
	return nil
}

// Cancel moves any non-terminal order to Cancelled. Invoked only through an
// approved cancellation request.
func (o *CustomOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// IsSchedulable reports whether the order may enter the delivery calendar.
// Custom orders are scheduled once payment is confirmed, including while
// still in production.
func (o *CustomOrder) IsSchedulable() bool {
	return o.status == Confirmed || o.status == InProduction
}

// IsCancellable reports whether a cancellation request may be filed.
// Before payment confirmation there is nothing to unwind, so requests are
// accepted only while confirmed or in production.
func (o *CustomOrder) IsCancellable() bool {
	return o.status == Confirmed || o.status == InProduction
}
