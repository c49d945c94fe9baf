package kernel

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Buffer is a holding area between two adjacent phases. Orders in a buffer
// carry no workcenter and no pan.
type Buffer int

const (
	// BufferUnknown represents an invalid or undefined buffer.
	BufferUnknown Buffer = iota

	// ChargingMixingBuffer sits between the Charging and Mixing phases.
	// Newly created orders start here.
	ChargingMixingBuffer

	// MixingExtrusionBuffer sits between the Mixing and Extrusion phases.
	MixingExtrusionBuffer
)

func getBufferStrings() map[Buffer]string {
	return map[Buffer]string{
		ChargingMixingBuffer:  "charging_mixing_buffer",
		MixingExtrusionBuffer: "mixing_extrusion_buffer",
	}
}

// BufferFromString parses the wire representation of a buffer
// ("charging_mixing_buffer", "mixing_extrusion_buffer").
func BufferFromString(s string) (Buffer, error) {
	for buffer, str := range getBufferStrings() {
		if str == s {
			return buffer, nil
		}
	}
	return BufferUnknown, errs.NewValueIsInvalidErrorWithCause(
		"buffer", fmt.Errorf("%q is not a valid buffer", s))
}

// String returns the wire representation of the buffer, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (b Buffer) String() string {
	if str, ok := getBufferStrings()[b]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for values outside the two defined buffers.
func (b Buffer) Validate() error {
	if _, ok := getBufferStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"buffer", fmt.Errorf("%d is not a valid buffer", b))
	}
	return nil
}

// IsAdjacentTo reports whether the buffer borders the given phase.
// ChargingMixingBuffer borders Charging and Mixing; MixingExtrusionBuffer
// borders Mixing and Extrusion.
func (b Buffer) IsAdjacentTo(phase Phase) bool {
	switch b {
	case ChargingMixingBuffer:
		return phase == Charging || phase == Mixing
	case MixingExtrusionBuffer:
		return phase == Mixing || phase == Extrusion
	default:
		return false
	}
}
