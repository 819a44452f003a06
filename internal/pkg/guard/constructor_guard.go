// Package guard implements the constructor-guard pattern used by domain
// objects to reject zero-value instances that bypassed their constructors.
//
// A ConstructorGuard field is set by the constructor and checked by the
// object's Validate method. A struct literal or zero value carries an unset
// guard, so Validate fails and the invalid instance cannot be used.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having passed through its constructor.
// The zero value is "not constructed"; NewConstructorGuard produces the
// "constructed" state.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
// Constructors embed the result in the object they build.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
