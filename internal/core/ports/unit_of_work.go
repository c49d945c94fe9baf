package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each
// request/command. This ensures proper isolation between concurrent
// operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. A move's order
// mutation and the pan claim/release it triggers execute inside one unit of
// work, so either both are observed or neither.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// ProductionOrderRepository returns an order repository bound to the
	// current transaction.
	ProductionOrderRepository() ProductionOrderRepository

	// PanRepository returns a pan repository bound to the current
	// transaction.
	PanRepository() PanRepository

	// WorkcenterRepository returns a workcenter repository bound to the
	// current transaction.
	WorkcenterRepository() WorkcenterRepository
}
