package queries

import (
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var ErrGetPendingCancellationsQueryIsNotConstructed = errors.New(
	"GetPendingCancellationsQuery must be created via NewGetPendingCancellationsQuery constructor",
)

// GetPendingCancellationsQuery retrieves every unresolved cancellation
// request, oldest first. Backs the admin review queue.
type GetPendingCancellationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCancellationsQuery creates a query to retrieve the review
// queue. This is a parameterless query.
func NewGetPendingCancellationsQuery() GetPendingCancellationsQuery {
	return GetPendingCancellationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingCancellationsQueryIsNotConstructed if validation fails.
func (q GetPendingCancellationsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCancellationsQueryIsNotConstructed)
}

// GetPendingCancellationsQueryResponse represents one request awaiting
// an administrator's verdict.
type GetPendingCancellationsQueryResponse struct {
	RequestID   kernel.UUID
	OrderID     kernel.UUID
	OrderKind   string
	OrderNumber string
	Reason      string
	RequestedAt time.Time
}
