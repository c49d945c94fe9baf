// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"production/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the production order repository
	// within a transaction.
	OrderRepoFactory interface {
		ProductionOrderRepository() ports.ProductionOrderRepository
	}

	// PanRepoFactory provides access to the pan repository within a transaction.
	PanRepoFactory interface {
		PanRepository() ports.PanRepository
	}

	// WorkcenterRepoFactory provides access to the workcenter repository
	// within a transaction.
	WorkcenterRepoFactory interface {
		WorkcenterRepository() ports.WorkcenterRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PanUoW manages transactions for pan-only operations.
	PanUoW interface {
		TxManager
		PanRepoFactory
	}

	// PanUoWFactory creates new pan unit of work instances.
	PanUoWFactory interface {
		Create() PanUoW
	}

	// WorkcenterUoW manages transactions for workcenter-only operations.
	WorkcenterUoW interface {
		TxManager
		WorkcenterRepoFactory
	}

	// WorkcenterUoWFactory creates new workcenter unit of work instances.
	WorkcenterUoWFactory interface {
		Create() WorkcenterUoW
	}

	// UoW manages transactions spanning orders, pans and workcenters.
	// Moves update the order's location and the pan pool atomically, so
	// their handler needs all three repositories in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.ProductionOrderRepository()
	//   panRepo := uow.PanRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PanRepoFactory
		WorkcenterRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
