// Package guard provides a small helper that lets value objects and commands
// detect whether they were created through their constructor or as a bare
// zero value. Embedding a ConstructorGuard and checking it in Validate()
// closes the loophole of instantiating a struct literal that skips
// constructor validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is
// supplied for an object that bypassed its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is invalid; a guard obtained from NewConstructorGuard is valid. It is
// immutable and safe to copy and to use concurrently.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
