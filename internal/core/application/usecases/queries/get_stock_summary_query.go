// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the aggregate repositories and read projections
// straight from the database.
package queries

import (
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/guard"
)

var ErrGetStockSummaryQueryIsNotConstructed = errors.New(
	"GetStockSummaryQuery must be created via NewGetStockSummaryQuery constructor",
)

// GetStockSummaryQuery retrieves the stock position of every product.
// Used by the admin inventory screen and the low stock report.
//
// Example:
//
//	query := NewGetStockSummaryQuery()
//	handler := NewGetStockSummaryQueryHandler(db)
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stock summary: %w", err)
//	}
//	for _, row := range summary {
//	    fmt.Printf("%s: %d available (%s)\n", row.Name, row.AvailableStock, row.Status)
//	}
type GetStockSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStockSummaryQuery creates a query to retrieve the stock summary.
// This is a parameterless query that fetches every product.
func NewGetStockSummaryQuery() GetStockSummaryQuery {
	return GetStockSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockSummaryQueryIsNotConstructed if validation fails.
func (q GetStockSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStockSummaryQueryIsNotConstructed)
}

// GetStockSummaryQueryResponse represents one product's stock position.
// Status is the derived availability band, never stored.
type GetStockSummaryQueryResponse struct {
	ProductID      kernel.UUID
	Name           string
	TotalStock     int
	AvailableStock int
	ReservedStock  int
	Status         string
}
