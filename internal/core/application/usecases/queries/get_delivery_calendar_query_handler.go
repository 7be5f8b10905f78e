package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryCalendarQueryHandler reads the dispatch calendar from the
// database, joining courier names onto each schedule.
type GetDeliveryCalendarQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryCalendarQueryHandler creates a handler for calendar
// queries. Requires a GORM database connection for query execution.
func NewGetDeliveryCalendarQueryHandler(db *gorm.DB) GetDeliveryCalendarQueryHandler {
	return GetDeliveryCalendarQueryHandler{db: db}
}

// Handle executes the query to retrieve schedules in the range.
// Results are sorted by delivery date then time slot.
func (h GetDeliveryCalendarQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryCalendarQuery,
) ([]GetDeliveryCalendarQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	calendar := make([]GetDeliveryCalendarQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.order_id,
			s.order_kind,
			s.delivery_date,
			s.time_slot,
			s.status,
			c.name,
			s.notes
		FROM delivery_schedules s
		LEFT JOIN couriers c ON c.id = s.courier_id
		WHERE s.delivery_date >= ? AND s.delivery_date < ?
		ORDER BY s.delivery_date, s.time_slot
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var orderKind, timeSlot, status, notes string
		var deliveryDate time.Time
		var courierName sql.NullString

		if err = rows.Scan(&id, &orderID, &orderKind, &deliveryDate,
			&timeSlot, &status, &courierName, &notes); err != nil {
			return nil, err
		}

		scheduleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		targetID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		calendar = append(calendar, GetDeliveryCalendarQueryResponse{
			ScheduleID:   scheduleID,
			OrderID:      targetID,
			OrderKind:    orderKind,
			DeliveryDate: deliveryDate,
			TimeSlot:     timeSlot,
			Status:       status,
			CourierName:  courierName.String,
			Notes:        notes,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return calendar, nil
}
