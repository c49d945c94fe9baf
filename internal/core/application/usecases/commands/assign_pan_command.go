package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var ErrAssignPanCommandIsNotConstructed = errors.New(
	"AssignPanCommand must be created via NewAssignPanCommand constructor",
)

// AssignPanCommand represents a request to rebind a pan to an order without
// moving it. Used to swap pans mid-charging.
type AssignPanCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	panID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignPanCommand creates a command to bind a pan to an order.
// Validates that both identifiers are valid.
func NewAssignPanCommand(orderID kernel.UUID, panID kernel.UUID) (AssignPanCommand, error) {
	assignCommand := AssignPanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setPanID(panID),
	); err != nil {
		return AssignPanCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignPanCommand) Validate() error {
	return c.guard.Validate(ErrAssignPanCommandIsNotConstructed)
}

// OrderID returns the identifier of the order receiving the pan.
func (c AssignPanCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PanID returns the identifier of the pan to bind.
func (c AssignPanCommand) PanID() kernel.UUID {
	return c.panID
}

func (c *AssignPanCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignPanCommand) setPanID(panID kernel.UUID) error {
	if err := panID.Validate(); err != nil {
		return err
	}

	c.panID = panID
	return nil
}
