package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetProductionOrdersByPhaseQueryIsNotConstructed = errors.New(
	"GetProductionOrdersByPhaseQuery must be created via NewGetProductionOrdersByPhaseQuery constructor",
)

// GetProductionOrdersByPhaseQuery retrieves the orders currently sitting in
// one phase of the pipeline.
//
// Example:
//
//	query, _ := NewGetProductionOrdersByPhaseQuery(kernel.Mixing)
//	orders, err := NewGetProductionOrdersByPhaseQueryHandler(db).Handle(ctx, query)
type GetProductionOrdersByPhaseQuery struct { //nolint:recvcheck //using for validation
	phase kernel.Phase

	guard guard.ConstructorGuard
}

// NewGetProductionOrdersByPhaseQuery creates a query for orders in the
// given phase. Validates that the phase is one of charging, mixing or
// extrusion.
func NewGetProductionOrdersByPhaseQuery(phase kernel.Phase) (GetProductionOrdersByPhaseQuery, error) {
	if err := phase.Validate(); err != nil {
		return GetProductionOrdersByPhaseQuery{}, err
	}

	return GetProductionOrdersByPhaseQuery{
		phase: phase,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrdersByPhaseQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrdersByPhaseQueryIsNotConstructed)
}

// Phase returns the phase to filter by.
func (q GetProductionOrdersByPhaseQuery) Phase() kernel.Phase {
	return q.phase
}
