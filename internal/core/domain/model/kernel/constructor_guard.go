package kernel

import "errors"

// ErrDefaultConstructorGuard is what ConstructorGuard.Validate falls back to
// when the caller passes a nil error, so an unconstructed object never
// validates cleanly by accident.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having come through its constructor.
// Every value object in this package and every aggregate in the domain
// carries one in a private field; since a zero-value struct has an
// unconstructed guard, `var c ServiceCategory` or a bare struct literal is
// caught the first time Validate runs.
//
// The idiom, as used by kernel.Money:
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  ConstructorGuard
//	}
//
//	func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
//	    if amount.IsNegative() {
//	        return Money{}, errs.NewValueIsInvalidError("amount")
//	    }
//	    return Money{amount: amount, guard: NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
//
// The guard only proves provenance. Field-level rules (a non-negative
// amount, a non-empty category name) stay in the constructor.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Assign it in
// the constructor, after the field checks have passed:
//
//	func NewServiceCategory(name string) (ServiceCategory, error) {
//	    name = strings.TrimSpace(name)
//	    if name == "" {
//	        return ServiceCategory{}, errs.NewValueIsRequiredError("category name")
//	    }
//	    return ServiceCategory{name: name, guard: NewConstructorGuard()}, nil
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns the given error, or ErrDefaultConstructorGuard when that error is
// nil. Each type passes its own sentinel so the message names the missing
// constructor:
//
//	var ErrServiceCategoryIsNotConstructed = errors.New(
//	    "ServiceCategory must be created via NewServiceCategory constructor")
//
//	func (c ServiceCategory) Validate() error {
//	    return c.guard.Validate(ErrServiceCategoryIsNotConstructed)
//	}
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
