package commands

import (
	"context"

	"production/internal/core/domain/model/pan"
)

// CreatePanCommandHandler handles the business logic for pan registration.
// New pans are immediately available for claiming.
type CreatePanCommandHandler struct {
	uowFactory PanUoWFactory
}

// NewCreatePanCommandHandler creates a handler for pan registration.
// Requires a PanUoWFactory for transactional persistence.
func NewCreatePanCommandHandler(uowFactory PanUoWFactory) CreatePanCommandHandler {
	return CreatePanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pan registration command.
func (h CreatePanCommandHandler) Handle(ctx context.Context, cmd CreatePanCommand) error {
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

	newPan, err := pan.NewPan(cmd.PanID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.PanRepository().Add(ctx, newPan); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
