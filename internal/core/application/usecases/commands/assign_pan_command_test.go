package commands_test

import (
	"testing"

	"production/internal/core/application/usecases/commands"
	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignPanCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	panID := kernel.NewUUID()
	cmd, err := commands.NewAssignPanCommand(orderID, panID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, panID, cmd.PanID())
}

func TestNewAssignPanCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAssignPanCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewAssignPanCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
