package ports

import (
	"context"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// schedule aggregates.
type DeliveryRepository interface {
	// Upsert persists a schedule keyed by its order reference. An order
	// has at most one schedule; rescheduling overwrites the existing row
	// instead of creating a duplicate.
	Upsert(ctx context.Context, aggregate *delivery.Schedule) error

	// Update persists changes to an existing schedule.
	Update(ctx context.Context, aggregate *delivery.Schedule) error

	// Get retrieves a schedule by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error)

	// GetForUpdate retrieves a schedule holding a row lock until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error)

	// GetByOrderRef retrieves the schedule for an order. Returns
	// (nil, nil) when the order has no schedule.
	GetByOrderRef(ctx context.Context, ref kernel.OrderRef) (*delivery.Schedule, error)

	// CountActiveOn counts schedules on a calendar day that occupy
	// capacity, excluding the given order's own schedule. The count
	// locks the matched rows so concurrent bookings for the same day
	// serialize; must be called inside an active unit of work.
	CountActiveOn(ctx context.Context, day time.Time, exclude kernel.OrderRef) (int, error)

	// GetAllBetween retrieves every schedule with a delivery date inside
	// [from, to), ordered by date then time slot. Used by the calendar.
	GetAllBetween(ctx context.Context, from, to time.Time) ([]*delivery.Schedule, error)

	// GetOverdueScheduled retrieves schedules still in the scheduled
	// status whose delivery date is before the given day. Used by the
	// overdue sweep job.
	GetOverdueScheduled(ctx context.Context, before time.Time) ([]*delivery.Schedule, error)
}
