package kernel_test

import (
	"testing"

	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferFromString(t *testing.T) {
	t.Run("should parse all known buffers", func(t *testing.T) {
		cases := map[string]kernel.Buffer{
			"charging_mixing_buffer":  kernel.ChargingMixingBuffer,
			"mixing_extrusion_buffer": kernel.MixingExtrusionBuffer,
		}

		for str, expected := range cases {
			buffer, err := kernel.BufferFromString(str)
			require.NoError(t, err)
			assert.Equal(t, expected, buffer)
			assert.Equal(t, str, buffer.String())
		}
	})

	t.Run("should fail on unknown buffer", func(t *testing.T) {
		_, err := kernel.BufferFromString("extrusion_packing_buffer")

		require.Error(t, err)
	})
}

func TestBuffer_IsAdjacentTo(t *testing.T) {
	t.Run("charging_mixing_buffer borders charging and mixing", func(t *testing.T) {
		assert.True(t, kernel.ChargingMixingBuffer.IsAdjacentTo(kernel.Charging))
		assert.True(t, kernel.ChargingMixingBuffer.IsAdjacentTo(kernel.Mixing))
		assert.False(t, kernel.ChargingMixingBuffer.IsAdjacentTo(kernel.Extrusion))
	})

	t.Run("mixing_extrusion_buffer borders mixing and extrusion", func(t *testing.T) {
		assert.True(t, kernel.MixingExtrusionBuffer.IsAdjacentTo(kernel.Mixing))
		assert.True(t, kernel.MixingExtrusionBuffer.IsAdjacentTo(kernel.Extrusion))
		assert.False(t, kernel.MixingExtrusionBuffer.IsAdjacentTo(kernel.Charging))
	})

	t.Run("unknown buffer borders nothing", func(t *testing.T) {
		assert.False(t, kernel.BufferUnknown.IsAdjacentTo(kernel.Mixing))
	})
}
