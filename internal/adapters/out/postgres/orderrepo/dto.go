// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. An order row owns its line item rows; items are
// written once at creation and never change.
package orderrepo

import (
	"fmt"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Status is stored as its string form so rows stay readable
// in ad hoc queries.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"index"`
	Items       []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line item row.
type ItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.OrderNumber(),
		UserID:      aggregate.UserID().Bytes(),
		Status:      aggregate.Status().String(),
		Items:       items,
	}
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, idErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := statusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.OrderNumber, userID, items, status)
}

func statusFromString(s string) (order.Status, error) {
	switch s {
	case "pending":
		return order.Pending, nil
	case "confirmed":
		return order.Confirmed, nil
	case "cancelled":
		return order.Cancelled, nil
	default:
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid order status", s))
	}
}
