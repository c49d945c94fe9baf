package orderrepo

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/core/ports"
	"production/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductionOrderRepository implements ProductionOrderRepository using GORM.
type GormProductionOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductionOrderRepository creates a new GORM order repository.
func NewGormProductionOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionOrderRepository {
	return &GormProductionOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. The unique index on order_number
// turns a concurrent duplicate into ports.ErrOrderNumberAlreadyExists.
func (r *GormProductionOrderRepository) Add(ctx context.Context, aggregate *order.ProductionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrOrderNumberAlreadyExists
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Uses Select("*") so that
// clearing a workcenter or pan binding persists the NULL.
func (r *GormProductionOrderRepository) Update(ctx context.Context, aggregate *order.ProductionOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductionOrderDTO{}).
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

// Get retrieves an order by ID.
func (r *GormProductionOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.ProductionOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductionOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderNumber retrieves an order by its unique order number.
func (r *GormProductionOrderRepository) GetByOrderNumber(
	ctx context.Context, orderNumber string,
) (*order.ProductionOrder, error) {
	var dto ProductionOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_number = ?", orderNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_number", orderNumber)
		}
		return nil, err
	}

	return toDomain(dto)
}
