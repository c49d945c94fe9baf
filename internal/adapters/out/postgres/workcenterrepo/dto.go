// Package workcenterrepo provides data transfer objects and mapping
// functions for workcenter persistence.
package workcenterrepo

import (
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"

	"github.com/google/uuid"
)

// WorkcenterDTO represents the database structure for persisting
// workcenters. Phase is stored as its wire string and indexed for the
// per-phase listing.
type WorkcenterDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Phase     string    `gorm:"type:varchar(16);index;not null"`
	Capacity  int       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for workcenter entities.
func (WorkcenterDTO) TableName() string {
	return "workcenters"
}

// fromDomain converts a workcenter entity to its database representation.
func fromDomain(w *workcenter.Workcenter) WorkcenterDTO {
	return WorkcenterDTO{
		ID:        w.ID().Bytes(),
		Name:      w.Name(),
		Phase:     w.Phase().String(),
		Capacity:  w.Capacity(),
		CreatedAt: w.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a workcenter entity.
func toDomain(dto WorkcenterDTO) (*workcenter.Workcenter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	phase, err := kernel.PhaseFromString(dto.Phase)
	if err != nil {
		return nil, err
	}

	return workcenter.RestoreWorkcenter(id, dto.Name, phase, dto.Capacity, dto.CreatedAt)
}
