package product

import (
	"errors"
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

// DefaultLowStockThreshold is the available-stock level at or below which a
// product is reported as low on stock when no per-product threshold is set.
const DefaultLowStockThreshold = 15

// Domain errors for stock operations.
var (
	// ErrProductIsNotConstructed is returned when using a Product that was not
	// created via NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")
	// ErrNameIsRequired is returned when creating a product without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a failed reservation, naming the product
// and the quantities involved so the caller can surface exactly which line
// item broke a multi-item confirmation.
type InsufficientStockError struct {
	ProductID kernel.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Product is the stock ledger aggregate. It owns the per-product counters
// and is the only place where they are mutated, so the stock invariant is
// enforced in exactly one spot.
//
// Invariants, holding at all times:
//   - availableStock >= 0 and reservedStock >= 0
//   - availableStock + reservedStock <= totalStock
//
// Reserve and Release are the only mutators. A reservation moves units from
// available to reserved; a release moves them back, clamped so counters
// never go negative.
type Product struct {
	id                kernel.UUID
	name              string
	totalStock        int
	availableStock    int
	reservedStock     int
	lowStockThreshold int

	guard guard.ConstructorGuard
}

// NewProduct creates a product with its full stock available and nothing
// reserved. A non-positive threshold falls back to
// DefaultLowStockThreshold.
func NewProduct(id kernel.UUID, name string, totalStock, lowStockThreshold int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if totalStock < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("totalStock",
			fmt.Errorf("%d is negative", totalStock))
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &Product{
		id:                id,
		name:              name,
		totalStock:        totalStock,
		availableStock:    totalStock,
		reservedStock:     0,
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreProduct reconstructs a product from persistence, re-checking the
// stock invariant so corrupted rows surface as errors instead of flowing
// into reservations.
func RestoreProduct(id kernel.UUID, name string, totalStock, availableStock, reservedStock, lowStockThreshold int) (*Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if availableStock < 0 || reservedStock < 0 || availableStock+reservedStock > totalStock {
		return nil, errs.NewValueIsInvalidErrorWithCause("stock counters",
			fmt.Errorf("available=%d reserved=%d total=%d violates the stock invariant",
				availableStock, reservedStock, totalStock))
	}
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &Product{
		id:                id,
		name:              name,
		totalStock:        totalStock,
		availableStock:    availableStock,
		reservedStock:     reservedStock,
		lowStockThreshold: lowStockThreshold,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the product came through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// TotalStock returns the total units the store holds for this product.
func (p *Product) TotalStock() int {
	return p.totalStock
}

// AvailableStock returns the units currently available for reservation.
func (p *Product) AvailableStock() int {
	return p.availableStock
}

// ReservedStock returns the units held for confirmed orders.
func (p *Product) ReservedStock() int {
	return p.reservedStock
}

// LowStockThreshold returns the level at or below which the product reports
// low stock.
func (p *Product) LowStockThreshold() int {
	return p.lowStockThreshold
}

// Reserve moves qty units from available to reserved. It fails with an
// InsufficientStockError, leaving the counters untouched, when fewer than
// qty units are available.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if p.availableStock < qty {
		return &InsufficientStockError{
			ProductID: p.id,
			Requested: qty,
			Available: p.availableStock,
		}
	}

	p.availableStock -= qty
	p.reservedStock += qty
	return nil
}

// Release moves up to qty units from reserved back to available. The move
// is clamped at the reserved count so neither counter can go negative, and
// the clamped move cannot break the total-stock invariant.
func (p *Product) Release(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	if qty > p.reservedStock {
		qty = p.reservedStock
	}
	p.reservedStock -= qty
	p.availableStock += qty
	return nil
}

// StockStatus derives the display status from the available counter:
// out of stock at zero, low stock at or below the threshold, in stock
// otherwise.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.availableStock == 0:
		return OutOfStock
	case p.availableStock <= p.lowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}
