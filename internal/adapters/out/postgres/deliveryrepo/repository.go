package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/delivery"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"
	"github.com/kurtadodoli/sevenfour-sub008/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert saves a schedule keyed by its order reference. A second booking
// for the same order overwrites the first row instead of violating the
// unique index.
func (r *GormDeliveryRepository) Upsert(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}, {Name: "order_kind"}},
		UpdateAll: true,
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing schedule to the database.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryScheduleDTO{}).
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

// Get retrieves a schedule by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a schedule by ID holding a row lock until the
// surrounding transaction ends.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	return r.get(ctx, id, true)
}

func (r *GormDeliveryRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*delivery.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var dto DeliveryScheduleDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery schedule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderRef retrieves the schedule for an order.
// Returns (nil, nil) when the order has no schedule.
func (r *GormDeliveryRepository) GetByOrderRef(ctx context.Context, ref kernel.OrderRef) (*delivery.Schedule, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryScheduleDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND order_kind = ?", ref.ID().Bytes(), ref.Kind().String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountActiveOn counts capacity-occupying schedules on a calendar day,
// excluding the given order's own schedule. Row locks alone cannot close
// the count-then-insert race: a concurrent booking's fresh row is a
// phantom to this statement's snapshot, so two racers on a nearly full
// day could both pass the count. A transaction-scoped advisory lock on
// the day serializes bookings per calendar day instead.
func (r *GormDeliveryRepository) CountActiveOn(
	ctx context.Context,
	day time.Time,
	exclude kernel.OrderRef,
) (int, error) {
	if err := exclude.Validate(); err != nil {
		return 0, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", dayStart.Format("2006-01-02")).Error
	if err != nil {
		return 0, err
	}

	var dtos []DeliveryScheduleDTO
	err = r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("delivery_date = ?", dayStart).
		Where("status IN ?", []string{"scheduled", "in_transit"}).
		Where("NOT (order_id = ? AND order_kind = ?)", exclude.ID().Bytes(), exclude.Kind().String()).
		Find(&dtos).Error
	if err != nil {
		return 0, err
	}

	return len(dtos), nil
}

// GetAllBetween retrieves every schedule dated inside [from, to),
// ordered by date then time slot.
func (r *GormDeliveryRepository) GetAllBetween(ctx context.Context, from, to time.Time) ([]*delivery.Schedule, error) {
	var dtos []DeliveryScheduleDTO
	err := r.db.WithContext(ctx).
		Where("delivery_date >= ? AND delivery_date < ?", from, to).
		Order("delivery_date, time_slot").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetOverdueScheduled retrieves schedules still waiting past their
// delivery date.
func (r *GormDeliveryRepository) GetOverdueScheduled(ctx context.Context, before time.Time) ([]*delivery.Schedule, error) {
	var dtos []DeliveryScheduleDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND delivery_date < ?", "scheduled", before).
		Order("delivery_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormDeliveryRepository) toDomainAll(dtos []DeliveryScheduleDTO) ([]*delivery.Schedule, error) {
	schedules := make([]*delivery.Schedule, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, aggregate)
	}

	return schedules, nil
}
