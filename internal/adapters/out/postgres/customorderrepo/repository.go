package customorderrepo

import (
	"context"
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/customorder"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomOrderRepository implements CustomOrderRepository using GORM.
type GormCustomOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomOrderRepository creates a new GORM custom order repository.
func NewGormCustomOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomOrderRepository {
	return &GormCustomOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new custom order to the database.
func (r *GormCustomOrderRepository) Add(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing custom order to the database.
func (r *GormCustomOrderRepository) Update(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a custom order by ID.
func (r *GormCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a custom order by ID holding a row lock until
// the surrounding transaction ends.
func (r *GormCustomOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	return r.get(ctx, id, true)
}

func (r *GormCustomOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*customorder.CustomOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto CustomOrderDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("custom order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
