package budget

import (
	"errors"
	"fmt"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed indicates that a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one priced row of a budget proposal: a material or labor
// entry with a quantity and a unit price. Its subtotal is always derived,
// never stored independently, so it cannot drift from quantity × price.
//
// LineItem is a value object: replacing a proposal's items replaces the
// whole ordered sequence.
type LineItem struct {
	// name describes the material or work, e.g. "Semen"
	name string

	// quantity is the unit count, always positive
	quantity int

	// unitPrice is the price per unit, non-negative by construction
	unitPrice kernel.Money

	// guard ensures the value was properly initialized
	guard kernel.ConstructorGuard
}

// NewLineItem creates a validated line item.
//
// Business rules:
//   - name must not be empty
//   - quantity must be greater than 0
//   - unitPrice must be a constructed Money (zero is allowed)
func NewLineItem(name string, quantity int, unitPrice kernel.Money) (LineItem, error) {
	item := LineItem{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Name returns the material or work description.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the unit count.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i LineItem) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// Validate checks that the item was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
