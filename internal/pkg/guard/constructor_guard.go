// Package guard provides a lightweight mechanism for enforcing constructor usage
// on value objects and entities. Embedding a ConstructorGuard in a struct makes
// zero-value instances detectable: a guard obtained from NewConstructorGuard
// validates cleanly, while the zero-value guard reports that the object was not
// created through its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied for an object that bypassed its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as properly constructed.
// The zero value represents an object that bypassed its constructor.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructed, or ErrDefaultConstructorGuard
// when notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
