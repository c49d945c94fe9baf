// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work wraps one business transaction: a move's
// order relocation and the pan claim/release it triggers either all commit
// or all roll back.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ProductionOrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance carries its own transaction state; concurrent
// goroutines must use separate instances.
package postgres

import (
	"context"

	"production/internal/adapters/out/postgres/orderrepo"
	"production/internal/adapters/out/postgres/panrepo"
	"production/internal/adapters/out/postgres/workcenterrepo"
	"production/internal/core/domain/model/kernel"
	"production/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
// This is useful for implementing patterns like event sourcing or outbox pattern.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database
// connections. Each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The provided database connection is shared by all created
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates database transactions and tracks aggregate
// changes for business operations. Repositories obtained from it run inside
// the current transaction when one is active.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ProductionOrderRepository provides order persistence bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) ProductionOrderRepository() ports.ProductionOrderRepository {
	return orderrepo.NewGormProductionOrderRepository(uow.conn(), uow)
}

// PanRepository provides pan persistence bound to the current transaction,
// or to the main connection when none is active.
func (uow *GormUnitOfWork) PanRepository() ports.PanRepository {
	return panrepo.NewGormPanRepository(uow.conn(), uow)
}

// WorkcenterRepository provides workcenter persistence bound to the current
// transaction, or to the main connection when none is active.
func (uow *GormUnitOfWork) WorkcenterRepository() ports.WorkcenterRepository {
	return workcenterrepo.NewGormWorkcenterRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call it on every add or update; the
// collected aggregates are the hook for post-commit processing such as an
// outbox.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
