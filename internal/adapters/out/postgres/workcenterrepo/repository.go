package workcenterrepo

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkcenterRepository implements WorkcenterRepository using GORM.
type GormWorkcenterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkcenterRepository creates a new GORM workcenter repository.
func NewGormWorkcenterRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkcenterRepository {
	return &GormWorkcenterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new workcenter to the database.
func (r *GormWorkcenterRepository) Add(ctx context.Context, w *workcenter.Workcenter) error {
	if err := w.Validate(); err != nil {
		return err
	}

	dto := fromDomain(w)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(w.ID(), w)
	return nil
}

// Get retrieves a workcenter by ID.
func (r *GormWorkcenterRepository) Get(ctx context.Context, id kernel.UUID) (*workcenter.Workcenter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkcenterDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workcenter", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
