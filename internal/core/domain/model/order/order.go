package order

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrOrderNumberIsRequired is returned when creating an order without an
	// order number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrItemsAreRequired is returned when creating an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root for a regular catalog order. It owns the
// order's status and line items; stock reservation itself lives in the
// product aggregate and is coordinated by the confirm/cancel use cases.
//
// Invariants:
//   - valid identity, non-empty order number, at least one line item
//   - status transitions follow Pending -> Confirmed -> Cancelled
//   - line items are fixed at checkout and never mutated afterwards
type Order struct {
	id          kernel.UUID
	orderNumber string
	userID      kernel.UUID
	items       []Item
	status      Status

	isConstructed bool
}

// NewOrder creates a pending order as produced by checkout.
func NewOrder(id kernel.UUID, orderNumber string, userID kernel.UUID, items []Item) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		userID.Validate(),
	); err != nil {
		return nil, err
	}
	if orderNumber == "" {
		return nil, ErrOrderNumberIsRequired
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	return &Order{
		id:            id,
		orderNumber:   orderNumber,
		userID:        userID,
		items:         items,
		status:        Pending,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit
// status.
func RestoreOrder(id kernel.UUID, orderNumber string, userID kernel.UUID, items []Item, status Status) (*Order, error) {
	o, err := NewOrder(id, orderNumber, userID, items)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o.status = status
	return o, nil
}

// Validate ensures the order came through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the customer-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Ref returns the tagged reference other aggregates use to point at this
// order.
func (o *Order) Ref() (kernel.OrderRef, error) {
	return kernel.NewOrderRef(kernel.RegularOrder, o.id)
}

// Confirm moves the order from Pending to Confirmed. The caller reserves
// stock for every line item in the same transaction; a failed reservation
// must roll the whole confirmation back.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from Confirmed to Cancelled. Invoked only through
// an approved cancellation request; the caller releases the reserved stock
// in the same transaction.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
