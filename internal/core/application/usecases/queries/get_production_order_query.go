package queries

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrGetProductionOrderQueryIsNotConstructed = errors.New(
	"GetProductionOrderQuery must be created via NewGetProductionOrderQuery constructor",
)

// GetProductionOrderQuery retrieves a single production order by ID with its
// resolved workcenter and pan details. Backs the response bodies of the move
// and pan-assignment endpoints.
type GetProductionOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductionOrderQuery creates a query for a single order.
// Validates that the order ID is valid.
func NewGetProductionOrderQuery(orderID kernel.UUID) (GetProductionOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetProductionOrderQuery{}, err
	}

	return GetProductionOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetProductionOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
