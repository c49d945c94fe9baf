package commands

import (
	"context"
	"errors"

	"production/internal/core/domain/services"
	"production/internal/metrics"
	"production/internal/pkg/errs"
)

// AssignPanCommandHandler rebinds a pan to an order in place. The previously
// bound pan, if any, returns to the pool in the same transaction, so a pan
// swap never leaves two pans claimed by one order.
//
// Example:
//
//	handler := NewAssignPanCommandHandler(uowFactory)
//	cmd, _ := NewAssignPanCommand(orderID, panID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type AssignPanCommandHandler struct {
	uowFactory UoWFactory
	engine     services.TransitionEngine
}

// NewAssignPanCommandHandler creates a handler for pan assignment.
// Requires a UoWFactory spanning orders and pans.
func NewAssignPanCommandHandler(uowFactory UoWFactory) AssignPanCommandHandler {
	return AssignPanCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the pan assignment command.
// Re-assigning the pan an order already holds is a no-op. Any other pan must
// exist and be available, and gets claimed in place of the old one.
func (h AssignPanCommandHandler) Handle(ctx context.Context, cmd AssignPanCommand) error {
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
	panRepo := uow.PanRepository()

	targetOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	panID := cmd.PanID()
	release, claim := h.engine.PanChanges(targetOrder.Pan(), &panID)
	if claim == nil {
		return uow.Commit(ctx)
	}

	claimedPan, err := panRepo.Get(ctx, *claim)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPanNotFoundOrUnavailable
	}
	if err != nil {
		return err
	}

	if claimErr := claimedPan.Claim(); claimErr != nil {
		return ErrPanNotFoundOrUnavailable
	}
	if err = panRepo.Claim(ctx, claimedPan); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrPanNotFoundOrUnavailable
		}
		return err
	}

	if release != nil {
		releasedPan, getErr := panRepo.Get(ctx, *release)
		if getErr != nil {
			return getErr
		}

		releasedPan.Release()
		if err = panRepo.Update(ctx, releasedPan); err != nil {
			return err
		}
	}

	if err = targetOrder.AssignPan(panID); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, targetOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.PansClaimed.Inc()
	if release != nil {
		metrics.PansReleased.Inc()
	}
	return nil
}
