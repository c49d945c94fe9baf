package kernel

import (
	"fmt"

	"production/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. It is returned when validating a
// zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object wrapping github.com/google/uuid. It identifies
// entities and aggregates throughout the domain. The zero value is invalid;
// construct through NewUUID, UUIDFromString, or UUIDFromBytes.
//
// UUID is immutable and safe for concurrent use.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// Returns an error if the string is not a valid UUID format.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice, typically when
// reconstructing identifiers from persistence.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical textual form of the UUID.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value for persistence mapping.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
