package commands_test

import (
	"testing"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePanCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePanCommand(id, "Pan A")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.PanID())
	assert.Equal(t, "Pan A", cmd.Name())
}

func TestNewCreatePanCommand_InvalidPanID(t *testing.T) {
	_, err := commands.NewCreatePanCommand(kernel.UUID{}, "Pan A")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreatePanCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreatePanCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPanNameIsRequired)
}

func TestCreatePanCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreatePanCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreatePanCommandIsNotConstructed)
}
