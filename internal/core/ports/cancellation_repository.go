package ports

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
)

// CancellationRepository defines the persistence contract for cancellation
// request aggregates.
type CancellationRepository interface {
	// Add persists a new cancellation request to storage.
	Add(ctx context.Context, aggregate *cancellation.Request) error

	// Update persists changes to an existing cancellation request.
	Update(ctx context.Context, aggregate *cancellation.Request) error

	// Get retrieves a cancellation request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error)

	// GetForUpdate retrieves a cancellation request holding a row lock
	// until the surrounding transaction ends. Used by resolution to
	// serialize concurrent approve/reject decisions.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*cancellation.Request, error)

	// GetPendingByOrderRef retrieves the pending request for an order.
	// Returns (nil, nil) when the order has no pending request. Used to
	// reject duplicate submissions.
	GetPendingByOrderRef(ctx context.Context, ref kernel.OrderRef) (*cancellation.Request, error)

	// GetAllPending retrieves every unresolved cancellation request,
	// oldest first.
	GetAllPending(ctx context.Context) ([]*cancellation.Request, error)
}
