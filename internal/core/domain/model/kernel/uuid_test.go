package kernel_test

import (
	"testing"

	"production/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create valid unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		id, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")

		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("should fail on garbage input", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through bytes", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should fail on wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("should fail on nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})
}
