package kernel

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Phase is one of the three processing stages an order occupies while being
// actively worked. Phases are totally ordered: Charging < Mixing < Extrusion.
// The set is fixed and not user-extensible.
type Phase int

const (
	// PhaseUnknown represents an invalid or undefined phase.
	// This value (0) helps catch uninitialized Phase values.
	PhaseUnknown Phase = iota

	// Charging is the first phase of the pipeline. Orders in Charging must
	// carry both a workcenter and a pan.
	Charging

	// Mixing is the second phase of the pipeline.
	Mixing

	// Extrusion is the third and last phase of the pipeline.
	Extrusion
)

func getPhaseStrings() map[Phase]string {
	return map[Phase]string{
		Charging:  "charging",
		Mixing:    "mixing",
		Extrusion: "extrusion",
	}
}

// PhaseFromString parses the wire representation of a phase
// ("charging", "mixing", "extrusion").
func PhaseFromString(s string) (Phase, error) {
	for phase, str := range getPhaseStrings() {
		if str == s {
			return phase, nil
		}
	}
	return PhaseUnknown, errs.NewValueIsInvalidErrorWithCause(
		"phase", fmt.Errorf("%q is not a valid phase", s))
}

// String returns the wire representation of the phase, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (p Phase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for values outside the three defined phases.
func (p Phase) Validate() error {
	if _, ok := getPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"phase", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// Ordinal returns the position of the phase in the pipeline order:
// Charging=0, Mixing=1, Extrusion=2. Returns -1 for invalid phases.
func (p Phase) Ordinal() int {
	if p.Validate() != nil {
		return -1
	}
	return int(p) - 1
}
