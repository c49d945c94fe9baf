package panrepo

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/pan"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPanRepository implements PanRepository using GORM.
type GormPanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPanRepository creates a new GORM pan repository.
func NewGormPanRepository(db *gorm.DB, tracker aggregateTracker) *GormPanRepository {
	return &GormPanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pan to the database.
func (r *GormPanRepository) Add(ctx context.Context, p *pan.Pan) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Update saves availability changes to an existing pan. Uses Select("*") so
// that releasing a pan persists the false flag.
func (r *GormPanRepository) Update(ctx context.Context, p *pan.Pan) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PanDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Claim marks the pan unavailable, matching only rows that are still
// available. Under read committed a concurrent claimer blocks on the row
// lock and re-checks the availability flag once the winner commits, so its
// update matches zero rows and the claim fails instead of double-binding
// the pan.
func (r *GormPanRepository) Claim(ctx context.Context, p *pan.Pan) error {
	if err := p.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PanDTO{}).
		Where("id = ? AND is_available", p.ID().Bytes()).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pan", p.ID().String())
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Get retrieves a pan by ID.
func (r *GormPanRepository) Get(ctx context.Context, id kernel.UUID) (*pan.Pan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PanDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pan", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
