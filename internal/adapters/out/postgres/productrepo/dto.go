// Package productrepo provides data transfer objects and mapping functions
// for product persistence. Handles the conversion between the product
// aggregate and its relational representation.
package productrepo

import (
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates, including the three stock counters.
type ProductDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"index"`
	TotalStock        int
	AvailableStock    int
	ReservedStock     int
	LowStockThreshold int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		TotalStock:        aggregate.TotalStock(),
		AvailableStock:    aggregate.AvailableStock(),
		ReservedStock:     aggregate.ReservedStock(),
		LowStockThreshold: aggregate.LowStockThreshold(),
	}
}

// toDomain converts a database DTO back to a product aggregate.
// RestoreProduct re-checks the counter invariants on the way in.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name,
		dto.TotalStock, dto.AvailableStock, dto.ReservedStock, dto.LowStockThreshold)
}
