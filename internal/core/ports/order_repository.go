package ports

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for regular order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate holding a row lock until
	// the surrounding transaction ends. Used by confirmation and
	// cancellation to serialize concurrent status transitions.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
