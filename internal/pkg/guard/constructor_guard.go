// Package guard holds the ConstructorGuard used by value objects, aggregates,
// commands and queries to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it in a
// type, set it with NewConstructorGuard inside the constructor and check it in
// the type's Validate method:
//
//	var ErrTermsNotConstructed = errors.New("Terms must be created via NewTerms")
//
//	type Terms struct {
//	    transporterID string
//	    proposedRate  float64
//	    guard         guard.ConstructorGuard
//	}
//
//	func (t Terms) Validate() error {
//	    return t.guard.Validate(ErrTermsNotConstructed)
//	}
//
// The zero value reports "not constructed".
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
