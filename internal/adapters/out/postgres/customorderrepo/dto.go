// Package customorderrepo provides data transfer objects and mapping
// functions for custom order persistence.
package customorderrepo

import (
	"fmt"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// CustomOrderDTO represents the database structure for persisting custom
// order aggregates. ApprovedAt is null until the design is approved.
type CustomOrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"index"`
	ApprovedAt  *time.Time
}

// TableName specifies the database table name for custom order entities.
func (CustomOrderDTO) TableName() string {
	return "custom_orders"
}

// fromDomain converts a custom order aggregate to its database representation.
func fromDomain(aggregate *customorder.CustomOrder) CustomOrderDTO {
	return CustomOrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID().Bytes(),
		Status:      aggregate.Status().String(),
		ApprovedAt:  aggregate.ApprovedAt(),
	}
}

// toDomain converts a database DTO back to a custom order aggregate.
func toDomain(dto CustomOrderDTO) (*customorder.CustomOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	status, err := statusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return customorder.RestoreCustomOrder(id, dto.OrderNumber, userID, status, dto.ApprovedAt)
}

func statusFromString(s string) (customorder.Status, error) {
	switch s {
	case "pending":
		return customorder.Pending, nil
	case "approved":
		return customorder.Approved, nil
	case "confirmed":
		return customorder.Confirmed, nil
	case "in_production":
		return customorder.InProduction, nil
	case "completed":
		return customorder.Completed, nil
	case "cancelled":
		return customorder.Cancelled, nil
	default:
		return customorder.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid custom order status", s))
	}
}
