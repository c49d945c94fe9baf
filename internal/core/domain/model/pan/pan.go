package pan

import (
	"errors"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/guard"
)

var (
	// ErrPanIsNotConstructed indicates that the Pan was not created through
	// the NewPan or RestorePan constructor functions.
	ErrPanIsNotConstructed = errors.New("Pan must be created via NewPan or RestorePan constructor")

	// ErrPanIsNotAvailable indicates a claim attempt on a pan that is
	// already claimed by an order.
	ErrPanIsNotAvailable = errors.New("pan is already claimed")

	// ErrNameIsRequired indicates an empty pan name.
	ErrNameIsRequired = errors.New("pan name is required")
)

// Pan is an interchangeable container resource. At most one production order
// holds a claim on a pan at any time; a pan is claimed as a side effect of an
// order entering the charging phase (or an explicit assignment) and released
// when the order leaves the location that held it.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Created available; availability toggles only through Claim/Release
//   - Release is idempotent: releasing an available pan is a no-op
type Pan struct {
	id          kernel.UUID
	name        string
	isAvailable bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewPan creates an available pan with the given identity and display name.
func NewPan(id kernel.UUID, name string) (*Pan, error) {
	p := &Pan{
		isAvailable: true,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePan reconstructs a pan from persistence, preserving its
// availability and creation instant.
func RestorePan(id kernel.UUID, name string, isAvailable bool, createdAt time.Time) (*Pan, error) {
	p, err := NewPan(id, name)
	if err != nil {
		return nil, err
	}

	p.isAvailable = isAvailable
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the pan was created through a constructor function.
func (p *Pan) Validate() error {
	if p == nil {
		return ErrPanIsNotConstructed
	}
	return p.guard.Validate(ErrPanIsNotConstructed)
}

// ID returns the pan's unique identifier.
func (p *Pan) ID() kernel.UUID {
	return p.id
}

// Name returns the pan's display name.
func (p *Pan) Name() string {
	return p.name
}

// IsAvailable reports whether the pan is free to be claimed.
func (p *Pan) IsAvailable() bool {
	return p.isAvailable
}

// CreatedAt returns the creation instant of the pan.
func (p *Pan) CreatedAt() time.Time {
	return p.createdAt
}

// Claim marks the pan as in use by an order.
// Returns ErrPanIsNotAvailable when the pan is already claimed.
func (p *Pan) Claim() error {
	if !p.isAvailable {
		return ErrPanIsNotAvailable
	}

	p.isAvailable = false
	return nil
}

// Release marks the pan as available again. Releasing an already-available
// pan is a no-op, not an error.
func (p *Pan) Release() {
	p.isAvailable = true
}

func (p *Pan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pan) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
