package queries

import (
	"context"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCancellationsQueryHandler reads the cancellation review
// queue from the database.
type GetPendingCancellationsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCancellationsQueryHandler creates a handler for review
// queue queries. Requires a GORM database connection for query execution.
func NewGetPendingCancellationsQueryHandler(db *gorm.DB) GetPendingCancellationsQueryHandler {
	return GetPendingCancellationsQueryHandler{db: db}
}

// Handle executes the query to retrieve unresolved requests.
// Results are sorted oldest first so the queue is worked in arrival order.
func (h GetPendingCancellationsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCancellationsQuery,
) ([]GetPendingCancellationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]GetPendingCancellationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			order_kind,
			order_number,
			reason,
			requested_at
		FROM cancellation_requests
		WHERE status = ?
		ORDER BY requested_at
	`, "pending").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var orderKind, orderNumber, reason string
		var requestedAt time.Time

		if err = rows.Scan(&id, &orderID, &orderKind, &orderNumber, &reason, &requestedAt); err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		targetID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		requests = append(requests, GetPendingCancellationsQueryResponse{
			RequestID:   requestID,
			OrderID:     targetID,
			OrderKind:   orderKind,
			OrderNumber: orderNumber,
			Reason:      reason,
			RequestedAt: requestedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
