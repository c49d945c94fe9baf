package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/workcenter"
)

// WorkcenterRepository defines the persistence contract for workcenter
// entities. Workcenters are immutable after creation, so there is no
// update operation.
type WorkcenterRepository interface {
	// Add persists a new workcenter.
	Add(ctx context.Context, w *workcenter.Workcenter) error

	// Get retrieves a workcenter by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*workcenter.Workcenter, error)
}
