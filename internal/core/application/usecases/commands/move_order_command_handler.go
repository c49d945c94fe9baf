package commands

import (
	"context"
	"errors"
	"fmt"

	"production/internal/core/domain/services"
	"production/internal/metrics"
	"production/internal/pkg/errs"
)

// ErrPanNotFoundOrUnavailable is returned when a move requests a pan that
// does not exist or is already claimed by another order.
var ErrPanNotFoundOrUnavailable = errors.New("pan not found or unavailable")

// MoveOrderCommandHandler orchestrates order movement through the pipeline.
// It loads the order, runs the transition engine's structural and sequencing
// validation, verifies the requested resources exist, and commits the
// location change together with the pan claim/release in one transaction.
//
// Example:
//
//	handler := NewMoveOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or workcenter does not exist
//	case errors.Is(err, ErrPanNotFoundOrUnavailable):
//	    // requested pan missing or claimed elsewhere
//	case err != nil:
//	    // structural or sequencing violation
//	}
type MoveOrderCommandHandler struct {
	uowFactory UoWFactory
	engine     services.TransitionEngine
}

// NewMoveOrderCommandHandler creates a handler for order movement.
// Requires a UoWFactory spanning orders, pans and workcenters.
func NewMoveOrderCommandHandler(uowFactory UoWFactory) MoveOrderCommandHandler {
	return MoveOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewTransitionEngine(),
	}
}

// Handle processes the move command.
//
// Validation runs in three stages: the transition engine checks the request
// shape and the movement sequence against the order's current location, then
// the requested workcenter is resolved and must serve the target phase and
// the requested pan is claimed, and finally the order relocates and the pan
// pool updates. A pan the order
// already holds stays claimed when the move re-specifies it; any other
// requested pan must be available. The pan released by leaving charging
// becomes available in the same transaction.
func (h MoveOrderCommandHandler) Handle(ctx context.Context, cmd MoveOrderCommand) error {
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

	movingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	request := cmd.TransitionRequest()
	target, err := h.engine.Validate(movingOrder, request)
	if err != nil {
		return err
	}

	if cmd.WorkcenterID() != nil {
		boundWorkcenter, getErr := uow.WorkcenterRepository().Get(ctx, *cmd.WorkcenterID())
		if getErr != nil {
			return getErr
		}

		if targetPhase, ok := target.Phase(); ok && boundWorkcenter.Phase() != targetPhase {
			return fmt.Errorf("%w: workcenter %s serves %s, target phase is %s",
				services.ErrWorkcenterPhaseMismatch,
				boundWorkcenter.Name(), boundWorkcenter.Phase(), targetPhase)
		}
	}

	release, claim := h.engine.PanChanges(movingOrder.Pan(), cmd.PanID())

	if claim != nil {
		claimedPan, getErr := panRepo.Get(ctx, *claim)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return ErrPanNotFoundOrUnavailable
		}
		if getErr != nil {
			return getErr
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

	if err = movingOrder.Relocate(target, cmd.WorkcenterID(), cmd.PanID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, movingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if claim != nil {
		metrics.PansClaimed.Inc()
	}
	if release != nil {
		metrics.PansReleased.Inc()
	}
	return nil
}
