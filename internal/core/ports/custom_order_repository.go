package ports

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
)

// CustomOrderRepository defines the persistence contract for custom order
// aggregates.
type CustomOrderRepository interface {
	// Add persists a new custom order aggregate to storage.
	Add(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Update persists changes to an existing custom order aggregate.
	Update(ctx context.Context, aggregate *customorder.CustomOrder) error

	// Get retrieves a custom order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error)

	// GetForUpdate retrieves a custom order aggregate holding a row lock
	// until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error)
}
