package ports

import (
	"context"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/pan"
)

// PanRepository defines the persistence contract for pan entities.
type PanRepository interface {
	// Add persists a new pan.
	Add(ctx context.Context, p *pan.Pan) error

	// Update persists availability changes to an existing pan.
	Update(ctx context.Context, p *pan.Pan) error

	// Claim persists the pan's claim, succeeding only while the stored row
	// is still available. Two transactions claiming the same pan therefore
	// produce exactly one winner. A missing pan and a pan already claimed
	// elsewhere are indistinguishable here; both report not found.
	Claim(ctx context.Context, p *pan.Pan) error

	// Get retrieves a pan by its unique identifier, regardless of its
	// availability.
	Get(ctx context.Context, id kernel.UUID) (*pan.Pan, error)
}
