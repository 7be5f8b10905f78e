package order

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"
)

// Item is an ordered line: a product and a positive quantity. Items are
// value objects fixed at checkout; the lifecycle only reads them to know
// how much stock to reserve and release.
type Item struct {
	productID kernel.UUID
	quantity  int
}

// NewItem creates a validated line item.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ProductID returns the ordered product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}
