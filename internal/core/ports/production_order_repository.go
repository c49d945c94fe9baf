// Package ports defines repository and unit-of-work interfaces for the
// production tracking domain. These interfaces establish contracts between
// the domain layer and infrastructure, enabling dependency inversion and
// in-memory test doubles: the transition engine and the command handlers
// depend on these capabilities, never on a concrete storage implementation.
package ports

import (
	"context"
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
)

// ErrOrderNumberAlreadyExists is returned when another order already uses
// the requested order number. A unique index enforces this at the database
// level, so concurrent creates cannot both succeed.
var ErrOrderNumberAlreadyExists = errors.New("order number already exists")

// ProductionOrderRepository defines the persistence contract for production
// order aggregates.
type ProductionOrderRepository interface {
	// Add persists a new order aggregate. Returns
	// ErrOrderNumberAlreadyExists when the order number is taken.
	Add(ctx context.Context, aggregate *order.ProductionOrder) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.ProductionOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.ProductionOrder, error)

	// GetByOrderNumber retrieves an order aggregate by its unique order
	// number (case-sensitive exact match).
	GetByOrderNumber(ctx context.Context, orderNumber string) (*order.ProductionOrder, error)
}
