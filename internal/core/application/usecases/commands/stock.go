package commands

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/order"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
)

// reserveOrderStock reserves stock for every line item of an order.
// Each product row is locked for the rest of the transaction, so a failed
// reservation rolls back the lines already reserved.
func reserveOrderStock(ctx context.Context, products ports.ProductRepository, items []order.Item) error {
	for _, item := range items {
		aggregate, err := products.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = aggregate.Reserve(item.Quantity()); err != nil {
			return err
		}

		if err = products.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}

// releaseOrderStock returns reserved stock for every line item of an
// order. Used when a confirmed order is cancelled.
func releaseOrderStock(ctx context.Context, products ports.ProductRepository, items []order.Item) error {
	for _, item := range items {
		aggregate, err := products.GetForUpdate(ctx, item.ProductID())
		if err != nil {
			return err
		}

		if err = aggregate.Release(item.Quantity()); err != nil {
			return err
		}

		if err = products.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}
