package kernel

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// OrderKind distinguishes regular catalog orders from custom orders. The two
// live in separate tables and follow different lifecycles, so every
// cross-aggregate reference to "an order" carries its kind explicitly
// instead of re-deriving it from order number prefixes.
type OrderKind int

const (
	// UnknownOrderKind is the invalid zero value.
	UnknownOrderKind OrderKind = iota

	// RegularOrder is a catalog order whose items draw from shared stock.
	RegularOrder

	// CustomOrder is a made-to-order item that goes through a design
	// approval step and is produced per order, outside shared stock.
	CustomOrder
)

// String returns "regular", "custom", or "unknown".
func (k OrderKind) String() string {
	switch k {
	case RegularOrder:
		return "regular"
	case CustomOrder:
		return "custom"
	default:
		return "unknown"
	}
}

// Validate returns an error for any value other than RegularOrder or
// CustomOrder.
func (k OrderKind) Validate() error {
	if k != RegularOrder && k != CustomOrder {
		return errs.NewValueIsInvalidErrorWithCause("orderKind", fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

// ErrOrderRefIsNotConstructed indicates an OrderRef that was not created via
// NewOrderRef.
var ErrOrderRefIsNotConstructed = errs.NewValueIsRequiredError("OrderRef must be created via NewOrderRef")

// OrderRef is a tagged reference to either a regular or a custom order.
// It is the only representation of order identity that crosses aggregate
// boundaries (cancellation requests, delivery schedules), so downstream
// logic branches on Kind() exactly once and never on string patterns.
type OrderRef struct {
	kind OrderKind
	id   UUID
}

// NewOrderRef creates a validated reference to an order of the given kind.
func NewOrderRef(kind OrderKind, id UUID) (OrderRef, error) {
	if err := kind.Validate(); err != nil {
		return OrderRef{}, err
	}
	if err := id.Validate(); err != nil {
		return OrderRef{}, err
	}

	return OrderRef{kind: kind, id: id}, nil
}

// Kind returns the order kind the reference points at.
func (r OrderRef) Kind() OrderKind {
	return r.kind
}

// ID returns the referenced order's identifier.
func (r OrderRef) ID() UUID {
	return r.id
}

// IsEqual reports whether two references point at the same order.
func (r OrderRef) IsEqual(other OrderRef) bool {
	return r.kind == other.kind && r.id.IsEqual(other.id)
}

// Validate returns ErrOrderRefIsNotConstructed for the zero value and an
// invalid-kind error for a corrupted kind.
func (r OrderRef) Validate() error {
	if err := r.id.Validate(); err != nil {
		return ErrOrderRefIsNotConstructed
	}
	return r.kind.Validate()
}

// String renders the reference as "kind:uuid" for logs and error messages.
func (r OrderRef) String() string {
	return fmt.Sprintf("%s:%s", r.kind, r.id)
}
