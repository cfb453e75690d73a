// Package guard provides a defensive programming pattern that ensures value
// objects, entities, commands, and queries are only created through their
// designated constructor functions.
//
// By embedding a ConstructorGuard in a struct, you can detect whether the
// struct was properly initialized through its constructor or created as a zero
// value, and fail validation in the latter case. This keeps domain objects in
// a valid state without reflection or exported mutable flags.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	var ErrProductNotConstructed = errors.New("Product must be created via NewProduct")
//
//	type Product struct {
//	    name  string
//	    price decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduct(name string, price decimal.Decimal) (Product, error) {
//	    // validate name and price ...
//	    return Product{
//	        name:  name,
//	        price: price,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (p Product) Validate() error {
//	    return p.guard.Validate(ErrProductNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its embedding object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil when it was; otherwise returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
