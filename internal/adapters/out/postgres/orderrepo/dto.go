// Package orderrepo provides data transfer objects and mapping functions for
// production order persistence. This package implements the repository
// pattern for the order aggregate, handling the conversion between domain
// entities and database representations.
package orderrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ProductionOrderDTO represents the database structure for persisting order
// aggregates. Location is flattened to the wire strings (location_type plus
// a nullable phase or buffer_name); a unique index on order_number rejects
// concurrent creates with the same number at the database level.
type ProductionOrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber  string     `gorm:"uniqueIndex;not null"`
	Quantity     float64    `gorm:"not null"`
	Status       string     `gorm:"type:varchar(16);index;not null"`
	LocationType string     `gorm:"type:varchar(8);not null"`
	Phase        *string    `gorm:"type:varchar(16);index"`
	BufferName   *string    `gorm:"type:varchar(32);index"`
	WorkcenterID *uuid.UUID `gorm:"type:uuid;index"`
	PanID        *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (ProductionOrderDTO) TableName() string {
	return "production_orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.ProductionOrder) ProductionOrderDTO {
	dto := ProductionOrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		Quantity:     aggregate.Quantity(),
		Status:       aggregate.Status().String(),
		LocationType: aggregate.Location().Type().String(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	if phase, ok := aggregate.Location().Phase(); ok {
		s := phase.String()
		dto.Phase = &s
	}
	if buffer, ok := aggregate.Location().Buffer(); ok {
		s := buffer.String()
		dto.BufferName = &s
	}

	if id := aggregate.Workcenter(); id != nil {
		raw := id.Bytes()
		dto.WorkcenterID = &raw
	}
	if id := aggregate.Pan(); id != nil {
		raw := id.Bytes()
		dto.PanID = &raw
	}

	return dto
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreProductionOrder, re-validating the stored invariants.
func toDomain(dto ProductionOrderDTO) (*order.ProductionOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	location, err := locationFromDTO(dto)
	if err != nil {
		return nil, err
	}

	var workcenterID *kernel.UUID
	if dto.WorkcenterID != nil {
		wID, wErr := kernel.UUIDFromBytes((*dto.WorkcenterID)[:])
		if wErr != nil {
			return nil, wErr
		}
		workcenterID = &wID
	}

	var panID *kernel.UUID
	if dto.PanID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PanID)[:])
		if pErr != nil {
			return nil, pErr
		}
		panID = &pID
	}

	return order.RestoreProductionOrder(
		id, dto.OrderNumber, dto.Quantity, status, location,
		workcenterID, panID, dto.CreatedAt, dto.UpdatedAt,
	)
}

func locationFromDTO(dto ProductionOrderDTO) (kernel.Location, error) {
	locationType, err := kernel.LocationTypeFromString(dto.LocationType)
	if err != nil {
		return kernel.Location{}, err
	}

	if locationType == kernel.LocationTypePhase {
		if dto.Phase == nil {
			return kernel.Location{}, kernel.ErrLocationIsNotConstructed
		}
		phase, phaseErr := kernel.PhaseFromString(*dto.Phase)
		if phaseErr != nil {
			return kernel.Location{}, phaseErr
		}
		return kernel.NewPhaseLocation(phase)
	}

	if dto.BufferName == nil {
		return kernel.Location{}, kernel.ErrLocationIsNotConstructed
	}
	buffer, bufferErr := kernel.BufferFromString(*dto.BufferName)
	if bufferErr != nil {
		return kernel.Location{}, bufferErr
	}
	return kernel.NewBufferLocation(buffer)
}
