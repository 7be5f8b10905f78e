// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. The unit of work maintains the set of aggregates touched
// by a business transaction and coordinates writing out changes inside a
// single database transaction.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns one transaction; concurrent operations
// must use separate instances. Repositories obtained from the unit of
// work run on its transaction, so row locks taken by GetForUpdate hold
// until Commit or Rollback.
package postgres

import (
	"context"

	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/cancellationrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/courierrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/customorderrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/deliveryrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/orderrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/adapters/out/postgres/productrepo"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh instance
// with its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Repeated calls on the same instance are safe and do not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ProductRepository returns a product repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// CustomOrderRepository returns a custom order repository bound to the
// current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) CustomOrderRepository() ports.CustomOrderRepository {
	return customorderrepo.NewGormCustomOrderRepository(uow.conn(), uow)
}

// CancellationRepository returns a cancellation repository bound to the
// current transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) CancellationRepository() ports.CancellationRepository {
	return cancellationrepo.NewGormCancellationRepository(uow.conn(), uow)
}

// DeliveryRepository returns a delivery repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// CourierRepository returns a courier repository bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this
// unit of work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
