// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomOrderRepoFactory provides access to the custom order repository within a transaction.
	CustomOrderRepoFactory interface {
		CustomOrderRepository() ports.CustomOrderRepository
	}

	// CancellationRepoFactory provides access to the cancellation repository within a transaction.
	CancellationRepoFactory interface {
		CancellationRepository() ports.CancellationRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// OrderStockUoW manages transactions that move an order and its
	// product stock together. Confirmation reserves stock in the same
	// transaction that flips the order status.
	OrderStockUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
	}

	// OrderStockUoWFactory creates new order/stock unit of work instances.
	OrderStockUoWFactory interface {
		Create() OrderStockUoW
	}

	// CancellationIntakeUoW manages transactions for cancellation
	// submission. Reads the target order to validate it, writes only
	// the request.
	CancellationIntakeUoW interface {
		TxManager
		CancellationRepoFactory
		OrderRepoFactory
		CustomOrderRepoFactory
	}

	// CancellationIntakeUoWFactory creates new cancellation intake unit of work instances.
	CancellationIntakeUoWFactory interface {
		Create() CancellationIntakeUoW
	}

	// CancellationUoW manages transactions for cancellation resolution.
	// Approval touches the request, the order, its product stock, and
	// any delivery schedule in one transaction.
	CancellationUoW interface {
		TxManager
		CancellationRepoFactory
		OrderRepoFactory
		CustomOrderRepoFactory
		ProductRepoFactory
		DeliveryRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// SchedulingUoW manages transactions for delivery booking. The
	// capacity count and the schedule upsert share one transaction so
	// concurrent bookings for the same day serialize.
	SchedulingUoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		CustomOrderRepoFactory
		CourierRepoFactory
	}

	// SchedulingUoWFactory creates new scheduling unit of work instances.
	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}

	// DeliveryUoW manages transactions for delivery status changes and
	// courier assignment on existing schedules.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		CourierRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// CustomOrderUoW manages transactions for custom-order-only operations.
	CustomOrderUoW interface {
		TxManager
		CustomOrderRepoFactory
	}

	// CustomOrderUoWFactory creates new custom order unit of work instances.
	CustomOrderUoWFactory interface {
		Create() CustomOrderUoW
	}
)
