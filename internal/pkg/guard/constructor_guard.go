// Package guard provides a constructor-guard helper for commands and queries.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable, so application objects can insist on being built through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object was created through
// its constructor. The zero value fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed. Call it from
// the object's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// objects it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
