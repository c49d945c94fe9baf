package order

import (
	"fmt"

	"production/internal/pkg/errs"
)

// Status represents the lifecycle state of a production order. It is an
// axis orthogonal to the order's location: the transition engine moves
// orders between locations regardless of status, and status only changes
// through the terminal transitions below.
//
// State transitions:
//
//	Active ──┬──> Completed
//	         └──> Cancelled
//
// Completed and Cancelled are final states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Active is the initial status of every production order.
	Active

	// Completed indicates the order finished the pipeline. Final state.
	Completed

	// Cancelled indicates the order was abandoned. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Active:    "active",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate returns an error for values outside the three defined statuses.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Complete transitions the status to Completed.
// Only Active orders can be completed.
func (s Status) Complete() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Only Active orders can be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to cancel", s))
	}
	return Cancelled, nil
}
