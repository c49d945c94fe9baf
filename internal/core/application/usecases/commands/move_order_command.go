package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/core/domain/services"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var ErrMoveOrderCommandIsNotConstructed = errors.New(
	"MoveOrderCommand must be created via NewMoveOrderCommand constructor",
)

// MoveOrderCommand represents a request to move a production order to a new
// location in the pipeline, rebinding its workcenter and pan along the way.
// The constructor only checks that the provided values are well-formed;
// whether the combination is a legal move is decided by the transition
// engine inside the handler.
//
// Example:
//
//	phase := kernel.Charging
//	cmd, err := NewMoveOrderCommand(
//	    orderID, kernel.LocationTypePhase, &phase, nil, &workcenterID, &panID,
//	)
//	if err != nil {
//	    return err
//	}
//	err = NewMoveOrderCommandHandler(uowFactory).Handle(ctx, cmd)
type MoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	locationType kernel.LocationType
	phase        *kernel.Phase
	buffer       *kernel.Buffer
	workcenterID *kernel.UUID
	panID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewMoveOrderCommand creates a command to move an order. Validates that the
// order ID is valid, the location type is phase or buffer, and that every
// provided optional value is well-formed.
func NewMoveOrderCommand(
	orderID kernel.UUID,
	locationType kernel.LocationType,
	phase *kernel.Phase,
	buffer *kernel.Buffer,
	workcenterID *kernel.UUID,
	panID *kernel.UUID,
) (MoveOrderCommand, error) {
	moveCommand := MoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		moveCommand.setOrderID(orderID),
		moveCommand.setLocationType(locationType),
		moveCommand.setPhase(phase),
		moveCommand.setBuffer(buffer),
		moveCommand.setWorkcenterID(workcenterID),
		moveCommand.setPanID(panID),
	); err != nil {
		return MoveOrderCommand{}, err
	}

	return moveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c MoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TransitionRequest returns the requested target state in the form the
// transition engine consumes.
func (c MoveOrderCommand) TransitionRequest() services.TransitionRequest {
	return services.TransitionRequest{
		LocationType: c.locationType,
		Phase:        c.phase,
		Buffer:       c.buffer,
		WorkcenterID: c.workcenterID,
		PanID:        c.panID,
	}
}

// WorkcenterID returns the requested workcenter binding, or nil.
func (c MoveOrderCommand) WorkcenterID() *kernel.UUID {
	return c.workcenterID
}

// PanID returns the requested pan binding, or nil.
func (c MoveOrderCommand) PanID() *kernel.UUID {
	return c.panID
}

func (c *MoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *MoveOrderCommand) setLocationType(locationType kernel.LocationType) error {
	if locationType != kernel.LocationTypePhase && locationType != kernel.LocationTypeBuffer {
		return errs.NewValueIsInvalidError("location_type")
	}

	c.locationType = locationType
	return nil
}

func (c *MoveOrderCommand) setPhase(phase *kernel.Phase) error {
	if phase != nil {
		if err := phase.Validate(); err != nil {
			return err
		}
	}

	c.phase = phase
	return nil
}

func (c *MoveOrderCommand) setBuffer(buffer *kernel.Buffer) error {
	if buffer != nil {
		if err := buffer.Validate(); err != nil {
			return err
		}
	}

	c.buffer = buffer
	return nil
}

func (c *MoveOrderCommand) setWorkcenterID(workcenterID *kernel.UUID) error {
	if workcenterID != nil {
		if err := workcenterID.Validate(); err != nil {
			return err
		}
	}

	c.workcenterID = workcenterID
	return nil
}

func (c *MoveOrderCommand) setPanID(panID *kernel.UUID) error {
	if panID != nil {
		if err := panID.Validate(); err != nil {
			return err
		}
	}

	c.panID = panID
	return nil
}
