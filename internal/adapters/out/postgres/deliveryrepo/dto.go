// Package deliveryrepo provides data transfer objects and mapping
// functions for delivery schedule persistence. The unique index on the
// order reference columns is what guarantees one schedule per order at
// the storage level.
package deliveryrepo

import (
	"fmt"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// DeliveryScheduleDTO represents the database structure for persisting
// delivery schedules.
type DeliveryScheduleDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_schedule_order"`
	OrderKind    string    `gorm:"uniqueIndex:idx_schedule_order"`
	DeliveryDate time.Time `gorm:"index"`
	TimeSlot     string
	Status       string     `gorm:"index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	Notes        string
}

// TableName specifies the database table name for delivery schedules.
func (DeliveryScheduleDTO) TableName() string {
	return "delivery_schedules"
}

// fromDomain converts a schedule aggregate to its database representation.
func fromDomain(aggregate *delivery.Schedule) DeliveryScheduleDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return DeliveryScheduleDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderRef().ID().Bytes(),
		OrderKind:    aggregate.OrderRef().Kind().String(),
		DeliveryDate: aggregate.DeliveryDate(),
		TimeSlot:     aggregate.TimeSlot(),
		Status:       aggregate.Status().String(),
		CourierID:    courierID,
		Notes:        aggregate.Notes(),
	}
}

// toDomain converts a database DTO back to a schedule aggregate.
func toDomain(dto DeliveryScheduleDTO) (*delivery.Schedule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	kind, err := kindFromString(dto.OrderKind)
	if err != nil {
		return nil, err
	}

	ref, err := kernel.NewOrderRef(kind, orderID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := statusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreSchedule(id, ref, dto.DeliveryDate, dto.TimeSlot, status, courierID, dto.Notes)
}

func kindFromString(s string) (kernel.OrderKind, error) {
	switch s {
	case "regular":
		return kernel.RegularOrder, nil
	case "custom":
		return kernel.CustomOrder, nil
	default:
		return kernel.UnknownOrderKind, errs.NewValueIsInvalidErrorWithCause("orderKind",
			fmt.Errorf("%s is not a valid order kind", s))
	}
}

func statusFromString(s string) (delivery.Status, error) {
	switch s {
	case "scheduled":
		return delivery.Scheduled, nil
	case "in_transit":
		return delivery.InTransit, nil
	case "delivered":
		return delivery.Delivered, nil
	case "delayed":
		return delivery.Delayed, nil
	case "cancelled":
		return delivery.Cancelled, nil
	default:
		return delivery.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid delivery status", s))
	}
}
