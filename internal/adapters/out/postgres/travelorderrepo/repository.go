package travelorderrepo

import (
	"context"
	"errors"

	"traveldesk/internal/core/domain/model/kernel"
	"traveldesk/internal/core/domain/model/travelorder"
	"traveldesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTravelOrderRepository implements TravelOrderRepository using GORM.
type GormTravelOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTravelOrderRepository creates a new GORM travel order repository.
func NewGormTravelOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormTravelOrderRepository {
	return &GormTravelOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new travel order to the database.
func (r *GormTravelOrderRepository) Add(ctx context.Context, aggregate *travelorder.TravelOrder) error {
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

// Update saves an existing travel order to the database.
func (r *GormTravelOrderRepository) Update(ctx context.Context, aggregate *travelorder.TravelOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TravelOrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a travel order by ID.
func (r *GormTravelOrderRepository) Get(ctx context.Context, id kernel.UUID) (*travelorder.TravelOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TravelOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("travelOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a travel order by ID holding a FOR UPDATE row lock.
// Must run inside a transaction; the lock is released when the transaction
// ends. Concurrent status transitions on the same order serialize on this
// lock.
func (r *GormTravelOrderRepository) GetForUpdate(
	ctx context.Context,
	id kernel.UUID,
) (*travelorder.TravelOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TravelOrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("travelOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
