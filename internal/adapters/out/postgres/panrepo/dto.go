// Package panrepo provides data transfer objects and mapping functions for
// pan persistence.
package panrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/pan"

	"github.com/google/uuid"
)

// PanDTO represents the database structure for persisting pans.
// The availability flag is indexed to keep the free-pan listing cheap.
type PanDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	IsAvailable bool      `gorm:"index;not null"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for pan entities.
func (PanDTO) TableName() string {
	return "pans"
}

// fromDomain converts a pan entity to its database representation.
func fromDomain(p *pan.Pan) PanDTO {
	return PanDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		IsAvailable: p.IsAvailable(),
		CreatedAt:   p.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a pan entity.
func toDomain(dto PanDTO) (*pan.Pan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pan.RestorePan(id, dto.Name, dto.IsAvailable, dto.CreatedAt)
}
