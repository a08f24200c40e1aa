package loadrepo

import (
	"context"
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new load.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
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

// Update writes every column of an existing load, zero values included.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a load by ID.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a load by ID with SELECT ... FOR UPDATE.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadRepository) get(db *gorm.DB, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
