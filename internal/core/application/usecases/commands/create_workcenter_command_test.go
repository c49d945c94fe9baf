package commands_test

import (
	"testing"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateWorkcenterCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkcenterCommand(id, "Mixer 1", kernel.Mixing, 3)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.WorkcenterID())
	assert.Equal(t, "Mixer 1", cmd.Name())
	assert.Equal(t, kernel.Mixing, cmd.Phase())
	assert.Equal(t, 3, cmd.Capacity())
}

func TestNewCreateWorkcenterCommand_InvalidPhase(t *testing.T) {
	_, err := commands.NewCreateWorkcenterCommand(kernel.NewUUID(), "Mixer 1", kernel.PhaseUnknown, 3)
	require.Error(t, err)
}

func TestNewCreateWorkcenterCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateWorkcenterCommand(kernel.NewUUID(), "", kernel.Mixing, 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrWorkcenterNameIsRequired)
}

func TestNewCreateWorkcenterCommand_InvalidCapacity(t *testing.T) {
	_, err := commands.NewCreateWorkcenterCommand(kernel.NewUUID(), "Mixer 1", kernel.Mixing, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCapacityIsInvalid)
}
