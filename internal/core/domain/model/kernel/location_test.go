package kernel_test

import (
	"testing"

	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhaseLocation(t *testing.T) {
	t.Run("should create location with phase variant populated", func(t *testing.T) {
		loc, err := kernel.NewPhaseLocation(kernel.Mixing)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.True(t, loc.IsPhase())
		assert.False(t, loc.IsBuffer())

		phase, ok := loc.Phase()
		assert.True(t, ok)
		assert.Equal(t, kernel.Mixing, phase)

		_, ok = loc.Buffer()
		assert.False(t, ok)
	})

	t.Run("should fail with invalid phase", func(t *testing.T) {
		_, err := kernel.NewPhaseLocation(kernel.PhaseUnknown)

		require.Error(t, err)
	})
}

func TestNewBufferLocation(t *testing.T) {
	t.Run("should create location with buffer variant populated", func(t *testing.T) {
		loc, err := kernel.NewBufferLocation(kernel.MixingExtrusionBuffer)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.True(t, loc.IsBuffer())
		assert.False(t, loc.IsPhase())

		buffer, ok := loc.Buffer()
		assert.True(t, ok)
		assert.Equal(t, kernel.MixingExtrusionBuffer, buffer)

		_, ok = loc.Phase()
		assert.False(t, ok)
	})

	t.Run("should fail with invalid buffer", func(t *testing.T) {
		_, err := kernel.NewBufferLocation(kernel.BufferUnknown)

		require.Error(t, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("same variant and value are equal", func(t *testing.T) {
		a, _ := kernel.NewPhaseLocation(kernel.Charging)
		b, _ := kernel.NewPhaseLocation(kernel.Charging)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("different variants are not equal", func(t *testing.T) {
		a, _ := kernel.NewPhaseLocation(kernel.Mixing)
		b, _ := kernel.NewBufferLocation(kernel.ChargingMixingBuffer)

		assert.False(t, a.IsEqual(b))
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location must be created")
	})
}

func TestLocationTypeFromString(t *testing.T) {
	t.Run("should parse phase and buffer", func(t *testing.T) {
		phase, err := kernel.LocationTypeFromString("phase")
		require.NoError(t, err)
		assert.Equal(t, kernel.LocationTypePhase, phase)

		buffer, err := kernel.LocationTypeFromString("buffer")
		require.NoError(t, err)
		assert.Equal(t, kernel.LocationTypeBuffer, buffer)
	})

	t.Run("should fail on unknown type", func(t *testing.T) {
		_, err := kernel.LocationTypeFromString("conveyor")
		require.Error(t, err)
	})
}
