package commands

import (
	"errors"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	ErrCreatePanCommandIsNotConstructed = errors.New(
		"CreatePanCommand must be created via NewCreatePanCommand constructor",
	)
	ErrPanNameIsRequired = errors.New("pan name is required")
)

// CreatePanCommand represents a request to register a new pan.
// Pans start out available and are claimed by orders entering the charging
// phase.
type CreatePanCommand struct { //nolint:recvcheck //using for validation
	panID kernel.UUID
	name  string

	guard guard.ConstructorGuard
}

// NewCreatePanCommand creates a command to register a new pan.
// Validates that the pan ID is valid and the name is not empty.
func NewCreatePanCommand(panID kernel.UUID, name string) (CreatePanCommand, error) {
	panCommand := CreatePanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		panCommand.setPanID(panID),
		panCommand.setName(name),
	); err != nil {
		return CreatePanCommand{}, err
	}

	return panCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePanCommand) Validate() error {
	return c.guard.Validate(ErrCreatePanCommandIsNotConstructed)
}

// PanID returns the unique identifier for the pan.
func (c CreatePanCommand) PanID() kernel.UUID {
	return c.panID
}

// Name returns the human-readable pan name.
func (c CreatePanCommand) Name() string {
	return c.name
}

func (c *CreatePanCommand) setPanID(panID kernel.UUID) error {
	if err := panID.Validate(); err != nil {
		return err
	}

	c.panID = panID
	return nil
}

func (c *CreatePanCommand) setName(name string) error {
	if name == "" {
		return ErrPanNameIsRequired
	}

	c.name = name
	return nil
}
