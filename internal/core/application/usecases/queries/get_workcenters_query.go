package queries

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetWorkcentersQueryIsNotConstructed = errors.New(
	"GetWorkcentersQuery must be created via NewGetWorkcentersQuery or NewGetWorkcentersByPhaseQuery constructor",
)

// GetWorkcentersQuery retrieves workcenters, optionally restricted to one
// phase of the pipeline.
type GetWorkcentersQuery struct {
	phase *kernel.Phase

	guard guard.ConstructorGuard
}

// NewGetWorkcentersQuery creates a query to retrieve every workcenter.
func NewGetWorkcentersQuery() GetWorkcentersQuery {
	return GetWorkcentersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetWorkcentersByPhaseQuery creates a query restricted to workcenters
// of the given phase. Validates the phase.
func NewGetWorkcentersByPhaseQuery(phase kernel.Phase) (GetWorkcentersQuery, error) {
	if err := phase.Validate(); err != nil {
		return GetWorkcentersQuery{}, err
	}

	return GetWorkcentersQuery{
		phase: &phase,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetWorkcentersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkcentersQueryIsNotConstructed)
}

// Phase returns the phase filter, or nil when unrestricted.
func (q GetWorkcentersQuery) Phase() *kernel.Phase {
	return q.phase
}

// GetWorkcentersQueryResponse represents workcenter information in the
// read model. Capacity is informational; admission is never enforced.
type GetWorkcentersQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Phase     string
	Capacity  int
	CreatedAt time.Time
}
