package kernel

import (
	"fmt"

	"bizza/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via ZeroMoney, NewMoneyFromDecimal, or MoneyFromString",
)

// Money is a value object representing a non-negative currency amount.
// It wraps a decimal to keep totals exact: a proposal total of
// 2×50000 + 1×75000 must compare equal to 175000 with no floating-point
// drift. Signed arithmetic (such as expense variance, which may be
// negative) is performed on raw decimals obtained through Decimal.
//
// The zero value of Money is invalid and must be constructed using one of
// the provided factory functions. Money is immutable and safe for
// concurrent use.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("50000")
//	if err != nil {
//	    // handle error
//	}
//	subtotal := price.MulInt(2) // 100000
type Money struct {
	amount decimal.Decimal

	guard ConstructorGuard
}

// ZeroMoney returns a constructed Money with amount zero.
// Useful as the starting value when summing line items or expenses.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  NewConstructorGuard(),
	}
}

// NewMoneyFromDecimal creates a Money from a decimal amount.
// Returns a validation error when the amount is negative.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money from its decimal string representation,
// for example "50000" or "175000.50". Returns an error when the string is
// not a valid decimal or when the parsed amount is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}

	return NewMoneyFromDecimal(amount)
}

// Decimal returns the underlying decimal amount.
// Use this for signed arithmetic such as variance calculations.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  NewConstructorGuard(),
	}
}

// MulInt returns the Money multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  NewConstructorGuard(),
	}
}

// IsEqual compares two Money values by amount, ignoring exponent
// representation (175000 equals 175000.00).
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}

// Validate checks that the Money was created through a constructor function.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
