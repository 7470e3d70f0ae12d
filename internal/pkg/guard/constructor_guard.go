// Package guard implements the constructor-guard pattern used by domain
// objects, commands and queries to detect zero-value instances that bypassed
// their designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. Embedding a
// ConstructorGuard in a struct lets Validate distinguish instances created
// through the constructor from zero values, which keeps domain invariants
// enforceable even when structs are exported.
//
// Example:
//
//	type CreatePickupCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCreatePickupCommand(name string) (CreatePickupCommand, error) {
//	    if name == "" {
//	        return CreatePickupCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return CreatePickupCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CreatePickupCommand) Validate() error {
//	    return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value instances it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
