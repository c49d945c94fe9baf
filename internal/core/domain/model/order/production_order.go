package order

import (
	"errors"
	"fmt"
	"time"

	"production/internal/core/domain/model/kernel"
	"production/internal/pkg/errs"
)

var (
	// ErrProductionOrderIsNotConstructed is returned when a ProductionOrder
	// instance was not created through NewProductionOrder or
	// RestoreProductionOrder.
	ErrProductionOrderIsNotConstructed = errors.New(
		"ProductionOrder must be created via NewProductionOrder or RestoreProductionOrder constructor")

	// ErrOrderNumberIsRequired indicates an empty order number.
	ErrOrderNumberIsRequired = errors.New("order number is required")

	// ErrWorkcenterRequiredInPhase indicates a phase location without a
	// bound workcenter.
	ErrWorkcenterRequiredInPhase = errors.New("order in a phase must have a workcenter bound")

	// ErrPanRequiredInCharging indicates a charging location without a
	// bound pan.
	ErrPanRequiredInCharging = errors.New("order in charging must have a pan bound")

	// ErrResourcesForbiddenInBuffer indicates a buffer location with a
	// workcenter or pan still bound.
	ErrResourcesForbiddenInBuffer = errors.New("order in a buffer must have no workcenter or pan bound")
)

// ProductionOrder is the aggregate root tracking a discrete order through
// the charging -> mixing -> extrusion pipeline. It holds the order's
// current location and the resources bound to it.
//
// Invariants maintained by this aggregate:
//   - location is a phase => a workcenter is bound
//   - location is charging => a pan is bound
//   - location is a buffer => no workcenter and no pan are bound
//   - order number is immutable and non-empty; quantity is positive
//
// Orders are created in the charging/mixing buffer with no resources bound
// and status Active. Location and resource bindings change only through
// Relocate and AssignPan, which the transition engine drives after
// validating the requested move.
type ProductionOrder struct {
	id           kernel.UUID
	orderNumber  string
	quantity     float64
	status       Status
	location     kernel.Location
	workcenterID *kernel.UUID
	panID        *kernel.UUID
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// NewProductionOrder creates an order in the default location (the buffer
// between charging and mixing), status Active, with no resources bound.
func NewProductionOrder(id kernel.UUID, orderNumber string, quantity float64) (*ProductionOrder, error) {
	location, err := kernel.NewBufferLocation(kernel.ChargingMixingBuffer)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &ProductionOrder{
		status:        Active,
		location:      location,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreProductionOrder reconstructs an order from persistence. The
// restored state must satisfy the location/resource invariants.
func RestoreProductionOrder(
	id kernel.UUID,
	orderNumber string,
	quantity float64,
	status Status,
	location kernel.Location,
	workcenterID *kernel.UUID,
	panID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*ProductionOrder, error) {
	o, err := NewProductionOrder(id, orderNumber, quantity)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if err := validateBindings(location, workcenterID, panID); err != nil {
		return nil, err
	}

	o.status = status
	o.location = location
	o.workcenterID = workcenterID
	o.panID = panID
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return o, nil
}

// Validate ensures the order was created through a constructor function.
func (o *ProductionOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrProductionOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *ProductionOrder) IsEqual(other *ProductionOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ProductionOrder) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable human-readable order number.
func (o *ProductionOrder) OrderNumber() string {
	return o.orderNumber
}

// Quantity returns the ordered quantity.
func (o *ProductionOrder) Quantity() float64 {
	return o.quantity
}

// Status returns the lifecycle status of the order.
func (o *ProductionOrder) Status() Status {
	return o.status
}

// Location returns the order's current position in the pipeline.
func (o *ProductionOrder) Location() kernel.Location {
	return o.location
}

// Workcenter returns the bound workcenter's ID, or nil when unbound.
func (o *ProductionOrder) Workcenter() *kernel.UUID {
	return o.workcenterID
}

// Pan returns the bound pan's ID, or nil when unbound.
func (o *ProductionOrder) Pan() *kernel.UUID {
	return o.panID
}

// CreatedAt returns the creation instant of the order.
func (o *ProductionOrder) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last committed mutation.
func (o *ProductionOrder) UpdatedAt() time.Time {
	return o.updatedAt
}

// Relocate commits a validated move: it overwrites the location and the
// resource bindings in one step and refreshes the updated timestamp.
// The new state must satisfy the location/resource invariants; callers are
// expected to have run the transition engine's full validation first.
func (o *ProductionOrder) Relocate(
	location kernel.Location, workcenterID *kernel.UUID, panID *kernel.UUID,
) error {
	if err := location.Validate(); err != nil {
		return err
	}
	if err := validateBindings(location, workcenterID, panID); err != nil {
		return err
	}

	o.location = location
	o.workcenterID = workcenterID
	o.panID = panID
	o.updatedAt = time.Now().UTC()
	return nil
}

// AssignPan binds a pan to the order in place, without changing its
// location or workcenter binding. Fails for orders sitting in a buffer,
// where no resources may be bound.
func (o *ProductionOrder) AssignPan(panID kernel.UUID) error {
	if err := panID.Validate(); err != nil {
		return err
	}
	if err := validateBindings(o.location, o.workcenterID, &panID); err != nil {
		return err
	}

	o.panID = &panID
	o.updatedAt = time.Now().UTC()
	return nil
}

// Complete marks the order as completed. Final state.
func (o *ProductionOrder) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel marks the order as cancelled. Final state.
func (o *ProductionOrder) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

// validateBindings checks the structural location/resource invariants:
// phases require a workcenter, charging additionally requires a pan, and
// buffers forbid both resources.
func validateBindings(location kernel.Location, workcenterID, panID *kernel.UUID) error {
	if phase, ok := location.Phase(); ok {
		if workcenterID == nil {
			return ErrWorkcenterRequiredInPhase
		}
		if err := workcenterID.Validate(); err != nil {
			return err
		}
		if phase == kernel.Charging && panID == nil {
			return ErrPanRequiredInCharging
		}
		if panID != nil {
			return panID.Validate()
		}
		return nil
	}

	if workcenterID != nil || panID != nil {
		return ErrResourcesForbiddenInBuffer
	}
	return nil
}

func (o *ProductionOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ProductionOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *ProductionOrder) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%v is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
