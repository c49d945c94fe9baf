package workcenter

import (
	"errors"
	"fmt"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
	"production/internal/pkg/guard"
)

var (
	// ErrWorkcenterIsNotConstructed indicates that the Workcenter was not
	// created through NewWorkcenter or RestoreWorkcenter.
	ErrWorkcenterIsNotConstructed = errors.New(
		"Workcenter must be created via NewWorkcenter or RestoreWorkcenter constructor")

	// ErrNameIsRequired indicates an empty workcenter name.
	ErrNameIsRequired = errors.New("workcenter name is required")
)

// Workcenter is a named station bound to exactly one phase of the pipeline.
// Its phase affinity is immutable after creation. Capacity is declared,
// informational data; the transition engine does not enforce it as a cap.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Phase affinity must be one of the three defined phases
//   - Capacity must be positive
type Workcenter struct {
	id        kernel.UUID
	name      string
	phase     kernel.Phase
	capacity  int
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewWorkcenter creates a workcenter with the given identity, display name,
// phase affinity and declared capacity.
func NewWorkcenter(id kernel.UUID, name string, phase kernel.Phase, capacity int) (*Workcenter, error) {
	w := &Workcenter{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setName(name),
		w.setPhase(phase),
		w.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWorkcenter reconstructs a workcenter from persistence.
func RestoreWorkcenter(
	id kernel.UUID, name string, phase kernel.Phase, capacity int, createdAt time.Time,
) (*Workcenter, error) {
	w, err := NewWorkcenter(id, name, phase, capacity)
	if err != nil {
		return nil, err
	}

	w.createdAt = createdAt
	return w, nil
}

// Validate ensures the workcenter was created through a constructor function.
func (w *Workcenter) Validate() error {
	if w == nil {
		return ErrWorkcenterIsNotConstructed
	}
	return w.guard.Validate(ErrWorkcenterIsNotConstructed)
}

// ID returns the workcenter's unique identifier.
func (w *Workcenter) ID() kernel.UUID {
	return w.id
}

// Name returns the workcenter's display name.
func (w *Workcenter) Name() string {
	return w.name
}

// Phase returns the immutable phase affinity of the workcenter.
func (w *Workcenter) Phase() kernel.Phase {
	return w.phase
}

// Capacity returns the declared capacity value.
func (w *Workcenter) Capacity() int {
	return w.capacity
}

// CreatedAt returns the creation instant of the workcenter.
func (w *Workcenter) CreatedAt() time.Time {
	return w.createdAt
}

func (w *Workcenter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Workcenter) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}

func (w *Workcenter) setPhase(phase kernel.Phase) error {
	if err := phase.Validate(); err != nil {
		return err
	}
	w.phase = phase
	return nil
}

func (w *Workcenter) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity",
			fmt.Errorf("%d is not greater than 0", capacity))
	}
	w.capacity = capacity
	return nil
}
