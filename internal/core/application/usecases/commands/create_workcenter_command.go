package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	ErrCreateWorkcenterCommandIsNotConstructed = errors.New(
		"CreateWorkcenterCommand must be created via NewCreateWorkcenterCommand constructor",
	)
	ErrWorkcenterNameIsRequired = errors.New("workcenter name is required")
	ErrCapacityIsInvalid        = errors.New("capacity must be greater than 0")
)

// CreateWorkcenterCommand represents a request to register a new workcenter.
// Every workcenter belongs to exactly one phase of the pipeline.
type CreateWorkcenterCommand struct { //nolint:recvcheck //using for validation
	workcenterID kernel.UUID
	name         string
	phase        kernel.Phase
	capacity     int

	guard guard.ConstructorGuard
}

// NewCreateWorkcenterCommand creates a command to register a new workcenter.
// Validates that the ID and phase are valid, the name is not empty, and the
// capacity is positive.
func NewCreateWorkcenterCommand(
	workcenterID kernel.UUID, name string, phase kernel.Phase, capacity int,
) (CreateWorkcenterCommand, error) {
	workcenterCommand := CreateWorkcenterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		workcenterCommand.setWorkcenterID(workcenterID),
		workcenterCommand.setName(name),
		workcenterCommand.setPhase(phase),
		workcenterCommand.setCapacity(capacity),
	); err != nil {
		return CreateWorkcenterCommand{}, err
	}

	return workcenterCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkcenterCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkcenterCommandIsNotConstructed)
}

// WorkcenterID returns the unique identifier for the workcenter.
func (c CreateWorkcenterCommand) WorkcenterID() kernel.UUID {
	return c.workcenterID
}

// Name returns the human-readable workcenter name.
func (c CreateWorkcenterCommand) Name() string {
	return c.name
}

// Phase returns the pipeline phase the workcenter belongs to.
func (c CreateWorkcenterCommand) Phase() kernel.Phase {
	return c.phase
}

// Capacity returns the number of orders the workcenter can hold.
func (c CreateWorkcenterCommand) Capacity() int {
	return c.capacity
}

func (c *CreateWorkcenterCommand) setWorkcenterID(workcenterID kernel.UUID) error {
	if err := workcenterID.Validate(); err != nil {
		return err
	}

	c.workcenterID = workcenterID
	return nil
}

func (c *CreateWorkcenterCommand) setName(name string) error {
	if name == "" {
		return ErrWorkcenterNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateWorkcenterCommand) setPhase(phase kernel.Phase) error {
	if err := phase.Validate(); err != nil {
		return err
	}

	c.phase = phase
	return nil
}

func (c *CreateWorkcenterCommand) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}
