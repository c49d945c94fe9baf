// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"production/internal/pkg/guard"
)

var ErrGetProductionOrdersQueryIsNotConstructed = errors.New(
	"GetProductionOrdersQuery must be created via NewGetProductionOrdersQuery constructor",
)

// GetProductionOrdersQuery retrieves every production order with its
// resolved workcenter and pan details.
//
// Example:
//
//	query := NewGetProductionOrdersQuery()
//	handler := NewGetProductionOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s at %s\n", o.OrderNumber, o.LocationType)
//	}
type GetProductionOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProductionOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetProductionOrdersQuery() GetProductionOrdersQuery {
	return GetProductionOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetProductionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionOrdersQueryIsNotConstructed)
}
