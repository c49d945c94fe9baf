package commands

import (
	"context"

	"production/internal/core/domain/model/workcenter"
)

// CreateWorkcenterCommandHandler handles the business logic for workcenter
// registration.
type CreateWorkcenterCommandHandler struct {
	uowFactory WorkcenterUoWFactory
}

// NewCreateWorkcenterCommandHandler creates a handler for workcenter
// registration. Requires a WorkcenterUoWFactory for transactional persistence.
func NewCreateWorkcenterCommandHandler(uowFactory WorkcenterUoWFactory) CreateWorkcenterCommandHandler {
	return CreateWorkcenterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the workcenter registration command.
func (h CreateWorkcenterCommandHandler) Handle(ctx context.Context, cmd CreateWorkcenterCommand) error {
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

	newWorkcenter, err := workcenter.NewWorkcenter(cmd.WorkcenterID(), cmd.Name(), cmd.Phase(), cmd.Capacity())
	if err != nil {
		return err
	}

	if err = uow.WorkcenterRepository().Add(ctx, newWorkcenter); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
