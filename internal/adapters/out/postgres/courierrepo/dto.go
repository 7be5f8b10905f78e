// Package courierrepo provides data transfer objects and mapping
// functions for courier persistence.
package courierrepo

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/courier"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates.
type CourierDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Status string `gorm:"index"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Status: aggregate.Status().String(),
	}
}

// toDomain converts a database DTO back to a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := statusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name, dto.Phone, status)
}

func statusFromString(s string) (courier.Status, error) {
	switch s {
	case "active":
		return courier.Active, nil
	case "inactive":
		return courier.Inactive, nil
	default:
		return courier.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid courier status", s))
	}
}
