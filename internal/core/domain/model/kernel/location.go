package kernel

import (
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

// ErrLocationIsNotConstructed indicates that a Location was not created
// through NewPhaseLocation or NewBufferLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewPhaseLocation or NewBufferLocation")

// LocationType tags which variant of the Location union is populated.
type LocationType int

const (
	// LocationTypeUnknown represents an invalid or undefined location type.
	LocationTypeUnknown LocationType = iota

	// LocationTypePhase marks a location inside one of the three phases.
	LocationTypePhase

	// LocationTypeBuffer marks a location inside one of the two buffers.
	LocationTypeBuffer
)

// String returns the wire representation of the location type
// ("phase" or "buffer").
func (t LocationType) String() string {
	switch t {
	case LocationTypePhase:
		return "phase"
	case LocationTypeBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// LocationTypeFromString parses the wire representation of a location type.
func LocationTypeFromString(s string) (LocationType, error) {
	switch s {
	case "phase":
		return LocationTypePhase, nil
	case "buffer":
		return LocationTypeBuffer, nil
	default:
		return LocationTypeUnknown, errs.NewValueIsInvalidError("location_type")
	}
}

// Location is a tagged union describing where an order currently sits:
// exactly one Phase or exactly one Buffer, never both, never neither.
// Modeling the pair as a union makes the exclusivity invariant structural
// rather than runtime-checked.
//
// The full ordered movement sequence is:
//
//	charging -> charging_mixing_buffer -> mixing -> mixing_extrusion_buffer -> extrusion
//
// Location is an immutable value object; construct through NewPhaseLocation
// or NewBufferLocation.
type Location struct {
	locationType LocationType
	phase        Phase
	buffer       Buffer

	guard guard.ConstructorGuard
}

// NewPhaseLocation creates a Location inside the given phase.
func NewPhaseLocation(phase Phase) (Location, error) {
	if err := phase.Validate(); err != nil {
		return Location{}, err
	}
	return Location{
		locationType: LocationTypePhase,
		phase:        phase,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewBufferLocation creates a Location inside the given buffer.
func NewBufferLocation(buffer Buffer) (Location, error) {
	if err := buffer.Validate(); err != nil {
		return Location{}, err
	}
	return Location{
		locationType: LocationTypeBuffer,
		buffer:       buffer,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Type returns which variant of the union is populated.
func (l Location) Type() LocationType {
	return l.locationType
}

// IsPhase reports whether the location is a phase.
func (l Location) IsPhase() bool {
	return l.locationType == LocationTypePhase
}

// IsBuffer reports whether the location is a buffer.
func (l Location) IsBuffer() bool {
	return l.locationType == LocationTypeBuffer
}

// Phase returns the phase and true when the location is a phase,
// or PhaseUnknown and false otherwise.
func (l Location) Phase() (Phase, bool) {
	if !l.IsPhase() {
		return PhaseUnknown, false
	}
	return l.phase, true
}

// Buffer returns the buffer and true when the location is a buffer,
// or BufferUnknown and false otherwise.
func (l Location) Buffer() (Buffer, bool) {
	if !l.IsBuffer() {
		return BufferUnknown, false
	}
	return l.buffer, true
}

// IsEqual reports whether two locations denote the same position.
func (l Location) IsEqual(other Location) bool {
	return l.locationType == other.locationType &&
		l.phase == other.phase &&
		l.buffer == other.buffer
}

// String returns the wire representation of the populated variant.
func (l Location) String() string {
	if l.IsPhase() {
		return l.phase.String()
	}
	if l.IsBuffer() {
		return l.buffer.String()
	}
	return "unknown"
}

// Validate checks constructor provenance and tag consistency.
func (l Location) Validate() error {
	if err := l.guard.Validate(ErrLocationIsNotConstructed); err != nil {
		return err
	}

	switch l.locationType {
	case LocationTypePhase:
		return l.phase.Validate()
	case LocationTypeBuffer:
		return l.buffer.Validate()
	default:
		return errs.NewValueIsInvalidError("location_type")
	}
}
