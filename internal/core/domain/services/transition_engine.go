package services

import (
	"errors"
	"fmt"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/model/order"
	"production/internal/pkg/errs"
)

// Structural request-shape violations. The target of a move must name
// exactly one location variant and carry exactly the resources that
// variant demands.
var (
	// ErrWorkcenterRequired is returned when a move targets a phase
	// without naming a workcenter.
	ErrWorkcenterRequired = errors.New("workcenter assignment is required when moving to a phase")

	// ErrPanRequiredForCharging is returned when a move targets the
	// charging phase without naming a pan.
	ErrPanRequiredForCharging = errors.New("pan assignment is required when entering charging phase")

	// ErrBufferMustBeNullForPhase is returned when a move targets a phase
	// but the request also carries a buffer value.
	ErrBufferMustBeNullForPhase = errors.New("buffer name must be null when moving to a phase")

	// ErrPhaseRequired is returned when a move targets a phase but names
	// no phase value.
	ErrPhaseRequired = errors.New("phase must be specified when moving to a phase")

	// ErrBufferRequired is returned when a move targets a buffer but
	// names no buffer value.
	ErrBufferRequired = errors.New("buffer name is required when moving to a buffer")

	// ErrPhaseMustBeNullForBuffer is returned when a move targets a
	// buffer but the request also carries a phase value.
	ErrPhaseMustBeNullForBuffer = errors.New("phase must be null when moving to a buffer")

	// ErrResourcesMustBeNullForBuffer is returned when a move targets a
	// buffer but the request carries a workcenter or pan assignment.
	ErrResourcesMustBeNullForBuffer = errors.New(
		"workcenter and pan assignments must be null when moving to a buffer")
)

// Sequencing violations.
var (
	// ErrForwardStepTooLarge is returned for phase-to-phase moves that
	// skip ahead more than one phase.
	ErrForwardStepTooLarge = errors.New("cannot move more than one step forward")

	// ErrInvalidBufferForCurrentPhase is returned when the target buffer
	// does not border the order's current phase.
	ErrInvalidBufferForCurrentPhase = errors.New("buffer is not reachable from the current phase")
)

// ErrWorkcenterPhaseMismatch is returned when the requested workcenter serves
// a different phase than the one the order is moving to. The check itself runs
// in the move handler, which has the workcenter loaded; the sentinel lives
// here with the other movement rules.
var ErrWorkcenterPhaseMismatch = errors.New("workcenter does not serve the target phase")

// TransitionRequest is the raw shape of a requested move, as submitted by a
// caller: the target location variant plus nullable phase/buffer values and
// optional resource assignments. It deliberately keeps the nullable fields
// separate instead of a kernel.Location so that contradictory requests
// (e.g. a buffer value on a phase move) can be detected and rejected.
type TransitionRequest struct {
	LocationType kernel.LocationType
	Phase        *kernel.Phase
	Buffer       *kernel.Buffer
	WorkcenterID *kernel.UUID
	PanID        *kernel.UUID
}

// TransitionEngine is the domain service implementing the movement rules of
// the pipeline. It validates a requested move in two stages:
//
//  1. ValidateRequest checks the structural shape of the request itself and
//     produces the target Location.
//  2. ValidateSequence checks the move against the order's current location:
//     forward phase moves may advance at most one phase (backward moves of
//     any distance are legal), and a buffer is only reachable from a phase
//     it borders.
//
// The two rules together approximate, but deliberately do not enforce, a
// strict single-step rule over the full five-position chain: nothing stops
// a direct charging -> mixing move that skips the buffer in between. This
// matches the observed product behavior and is left as-is on purpose.
//
// Referential checks (workcenter exists, pan available) are the caller's
// responsibility, since they require repository access.
type TransitionEngine struct{}

// NewTransitionEngine creates a new TransitionEngine instance.
func NewTransitionEngine() TransitionEngine {
	return TransitionEngine{}
}

// ValidateRequest checks the structural consistency of the request and
// returns the target Location it denotes. The first failing check
// determines the error.
func (e TransitionEngine) ValidateRequest(request TransitionRequest) (kernel.Location, error) {
	switch request.LocationType {
	case kernel.LocationTypePhase:
		if request.WorkcenterID == nil {
			return kernel.Location{}, ErrWorkcenterRequired
		}
		if request.Phase != nil && *request.Phase == kernel.Charging && request.PanID == nil {
			return kernel.Location{}, ErrPanRequiredForCharging
		}
		if request.Buffer != nil {
			return kernel.Location{}, ErrBufferMustBeNullForPhase
		}
		if request.Phase == nil {
			return kernel.Location{}, ErrPhaseRequired
		}
		return kernel.NewPhaseLocation(*request.Phase)

	case kernel.LocationTypeBuffer:
		if request.Buffer == nil {
			return kernel.Location{}, ErrBufferRequired
		}
		if request.Phase != nil {
			return kernel.Location{}, ErrPhaseMustBeNullForBuffer
		}
		if request.WorkcenterID != nil || request.PanID != nil {
			return kernel.Location{}, ErrResourcesMustBeNullForBuffer
		}
		return kernel.NewBufferLocation(*request.Buffer)

	default:
		return kernel.Location{}, errs.NewValueIsInvalidError("location_type")
	}
}

// ValidateSequence checks the movement-ordering rules between the order's
// current location and the target location.
func (e TransitionEngine) ValidateSequence(current, target kernel.Location) error {
	currentPhase, currentIsPhase := current.Phase()

	if targetPhase, ok := target.Phase(); ok && currentIsPhase {
		cur, tgt := currentPhase.Ordinal(), targetPhase.Ordinal()
		if tgt > cur && tgt != cur+1 {
			return fmt.Errorf("%w: current phase %s, target phase %s",
				ErrForwardStepTooLarge, currentPhase, targetPhase)
		}
	}

	if targetBuffer, ok := target.Buffer(); ok && currentIsPhase {
		if !targetBuffer.IsAdjacentTo(currentPhase) {
			return fmt.Errorf("%w: current phase %s, target buffer %s",
				ErrInvalidBufferForCurrentPhase, currentPhase, targetBuffer)
		}
	}

	return nil
}

// Validate runs both validation stages against the given order and returns
// the target Location of a structurally and sequentially legal move.
func (e TransitionEngine) Validate(
	o *order.ProductionOrder, request TransitionRequest,
) (kernel.Location, error) {
	if err := o.Validate(); err != nil {
		return kernel.Location{}, err
	}

	target, err := e.ValidateRequest(request)
	if err != nil {
		return kernel.Location{}, err
	}

	if err := e.ValidateSequence(o.Location(), target); err != nil {
		return kernel.Location{}, err
	}

	return target, nil
}

// PanChanges computes the pan side effects of a validated move: which pan
// claim to release and which to take. A pan bound to the order is released
// unless the request re-specifies that same pan; a requested pan is claimed
// unless it is already the order's own.
func (e TransitionEngine) PanChanges(currentPan, requestedPan *kernel.UUID) (release, claim *kernel.UUID) {
	samePan := currentPan != nil && requestedPan != nil && currentPan.IsEqual(*requestedPan)

	if currentPan != nil && !samePan {
		release = currentPan
	}
	if requestedPan != nil && !samePan {
		claim = requestedPan
	}
	return release, claim
}
