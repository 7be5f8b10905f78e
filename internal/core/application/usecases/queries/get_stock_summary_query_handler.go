package queries

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/product"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStockSummaryQueryHandler reads every product's stock counters from
// the database. The availability band is derived through the product
// aggregate so the query and the write side can never disagree on what
// counts as low stock.
type GetStockSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetStockSummaryQueryHandler creates a handler for stock summary queries.
// Requires a GORM database connection for query execution.
func NewGetStockSummaryQueryHandler(db *gorm.DB) GetStockSummaryQueryHandler {
	return GetStockSummaryQueryHandler{db: db}
}

// Handle executes the query to retrieve the stock summary.
// Results are sorted by product name for consistent output.
func (h GetStockSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStockSummaryQuery,
) ([]GetStockSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	summary := make([]GetStockSummaryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			total_stock,
			available_stock,
			reserved_stock,
			low_stock_threshold
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		var total, available, reserved, threshold int

		if err = rows.Scan(&id, &name, &total, &available, &reserved, &threshold); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		aggregate, restoreErr := product.RestoreProduct(productID, name, total, available, reserved, threshold)
		if restoreErr != nil {
			return nil, restoreErr
		}

		summary = append(summary, GetStockSummaryQueryResponse{
			ProductID:      productID,
			Name:           name,
			TotalStock:     total,
			AvailableStock: available,
			ReservedStock:  reserved,
			Status:         aggregate.StockStatus().String(),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
