package cancellationrepo

import (
	"context"
	"errors"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/cancellation"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCancellationRepository implements CancellationRepository using GORM.
type GormCancellationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCancellationRepository creates a new GORM cancellation repository.
func NewGormCancellationRepository(db *gorm.DB, tracker aggregateTracker) *GormCancellationRepository {
	return &GormCancellationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cancellation request to the database.
func (r *GormCancellationRepository) Add(ctx context.Context, aggregate *cancellation.Request) error {
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

// Update saves an existing cancellation request to the database.
func (r *GormCancellationRepository) Update(ctx context.Context, aggregate *cancellation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CancellationRequestDTO{}).
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

// Get retrieves a cancellation request by ID.
func (r *GormCancellationRepository) Get(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a cancellation request by ID holding a row lock
// until the surrounding transaction ends.
func (r *GormCancellationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*cancellation.Request, error) {
	return r.get(ctx, id, true)
}

func (r *GormCancellationRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*cancellation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto CancellationRequestDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cancellation request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingByOrderRef retrieves the pending request for an order.
// Returns (nil, nil) when the order has no pending request.
func (r *GormCancellationRepository) GetPendingByOrderRef(
	ctx context.Context,
	ref kernel.OrderRef,
) (*cancellation.Request, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto CancellationRequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND order_kind = ? AND status = ?",
			ref.ID().Bytes(), ref.Kind().String(), "pending").Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves every unresolved request, oldest first.
func (r *GormCancellationRepository) GetAllPending(ctx context.Context) ([]*cancellation.Request, error) {
	var dtos []CancellationRequestDTO
	err := r.db.WithContext(ctx).
		Order("requested_at").
		Find(&dtos, "status = ?", "pending").Error
	if err != nil {
		return nil, err
	}

	requests := make([]*cancellation.Request, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		requests = append(requests, aggregate)
	}

	return requests, nil
}
