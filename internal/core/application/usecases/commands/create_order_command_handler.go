package commands

import (
	"context"
	"errors"

	"production/internal/core/domain/model/order"
	"production/internal/core/ports"
	"production/internal/metrics"
	"production/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders enter the pipeline in the charging/mixing buffer in "active"
// status, with no workcenter or pan bound.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "PO-2024-001", 500)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Rejects duplicate order numbers with ports.ErrOrderNumberAlreadyExists.
// The early lookup gives a clean error for the common case; the unique
// index behind the repository closes the concurrent-create race.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.ProductionOrderRepository()

	_, err := orderRepo.GetByOrderNumber(ctx, cmd.OrderNumber())
	if err == nil {
		return ports.ErrOrderNumberAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newOrder, err := order.NewProductionOrder(cmd.OrderID(), cmd.OrderNumber(), cmd.Quantity())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCreated.Inc()
	return nil
}
