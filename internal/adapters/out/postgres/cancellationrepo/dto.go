// Package cancellationrepo provides data transfer objects and mapping
// functions for cancellation request persistence.
package cancellationrepo

import (
	"fmt"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// CancellationRequestDTO represents the database structure for persisting
// cancellation requests. The order reference is flattened into an id and
// kind column pair.
type CancellationRequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index:idx_cancellation_order"`
	OrderKind   string    `gorm:"index:idx_cancellation_order"`
	OrderNumber string
	Reason      string
	Status      string `gorm:"index"`
	AdminNotes  string
	RequestedAt time.Time `gorm:"index"`
	ResolvedAt  *time.Time
}

// TableName specifies the database table name for cancellation requests.
func (CancellationRequestDTO) TableName() string {
	return "cancellation_requests"
}

// fromDomain converts a cancellation request aggregate to its database
// representation.
func fromDomain(aggregate *cancellation.Request) CancellationRequestDTO {
	return CancellationRequestDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderRef().ID().Bytes(),
		OrderKind:   aggregate.OrderRef().Kind().String(),
		OrderNumber: aggregate.OrderNumber(),
		Reason:      aggregate.Reason(),
		Status:      aggregate.Status().String(),
		AdminNotes:  aggregate.AdminNotes(),
		RequestedAt: aggregate.RequestedAt(),
		ResolvedAt:  aggregate.ResolvedAt(),
	}
}

// toDomain converts a database DTO back to a cancellation request aggregate.
func toDomain(dto CancellationRequestDTO) (*cancellation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ref, err := orderRefFromColumns(dto.OrderID, dto.OrderKind)
	if err != nil {
		return nil, err
	}

	status, err := statusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return cancellation.RestoreRequest(id, ref, dto.OrderNumber, dto.Reason,
		status, dto.AdminNotes, dto.RequestedAt, dto.ResolvedAt)
}

func orderRefFromColumns(orderID uuid.UUID, kind string) (kernel.OrderRef, error) {
	id, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return kernel.OrderRef{}, err
	}

	orderKind, err := kindFromString(kind)
	if err != nil {
		return kernel.OrderRef{}, err
	}

	return kernel.NewOrderRef(orderKind, id)
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

func statusFromString(s string) (cancellation.Status, error) {
	switch s {
	case "pending":
		return cancellation.Pending, nil
	case "approved":
		return cancellation.Approved, nil
	case "rejected":
		return cancellation.Rejected, nil
	default:
		return cancellation.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid cancellation status", s))
	}
}
