package ports

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and their stock counters.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate retrieves a product aggregate holding a row lock until
	// the surrounding transaction ends. Must be called inside an active
	// unit of work; used by stock mutations to serialize reservations.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves every product for stock reporting.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
