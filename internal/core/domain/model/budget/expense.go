package budget

import (
	"errors"
	"fmt"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

// ErrExpenseIsNotConstructed indicates that an Expense was not created
// through a constructor function.
var ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense constructor")

// Expense is an actual expenditure recorded by the foreman against an
// approved proposal: what was bought, how much of it, and at what price.
// Its total is derived from quantity × unit price; expenses are summed into
// the proposal variance for reporting.
//
// An optional proof-photo reference points into external blob storage.
type Expense struct {
	// id uniquely identifies the expense
	id kernel.UUID

	// proposalID references the owning proposal
	proposalID kernel.UUID

	// itemName describes what was purchased
	itemName string

	// quantity is the unit count, always positive
	quantity int

	// unitPrice is the actual price paid per unit
	unitPrice kernel.Money

	// purchasedAt is the purchase date
	purchasedAt time.Time

	// proofRef is an optional blob-store reference to a receipt photo
	proofRef *string

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewExpense creates a validated expense record.
//
// Business rules:
//   - itemName must not be empty
//   - quantity must be greater than 0
//   - unitPrice must be a constructed Money
//   - purchasedAt must not be zero
//   - proofRef, when present, must not be empty
func NewExpense(
	id kernel.UUID,
	proposalID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	purchasedAt time.Time,
	proofRef *string,
) (*Expense, error) {
	expense := &Expense{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		expense.setID(id),
		expense.setProposalID(proposalID),
		expense.setItemName(itemName),
		expense.setQuantity(quantity),
		expense.setUnitPrice(unitPrice),
		expense.setPurchasedAt(purchasedAt),
		expense.setProofRef(proofRef),
	); err != nil {
		return nil, err
	}

	return expense, nil
}

// RestoreExpense reconstructs an expense from persistent storage.
// Expenses are immutable once recorded, so restore takes the same
// parameters as creation.
func RestoreExpense(
	id kernel.UUID,
	proposalID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	purchasedAt time.Time,
	proofRef *string,
) (*Expense, error) {
	return NewExpense(id, proposalID, itemName, quantity, unitPrice, purchasedAt, proofRef)
}

// Validate ensures the expense was created through a constructor function.
func (e *Expense) Validate() error {
	if e == nil {
		return ErrExpenseIsNotConstructed
	}
	return e.guard.Validate(ErrExpenseIsNotConstructed)
}

// IsEqual compares two expenses by their unique identifiers.
func (e *Expense) IsEqual(other *Expense) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the expense's unique identifier.
func (e *Expense) ID() kernel.UUID {
	return e.id
}

// ProposalID returns the owning proposal.
func (e *Expense) ProposalID() kernel.UUID {
	return e.proposalID
}

// ItemName returns what was purchased.
func (e *Expense) ItemName() string {
	return e.itemName
}

// Quantity returns the unit count.
func (e *Expense) Quantity() int {
	return e.quantity
}

// UnitPrice returns the actual price paid per unit.
func (e *Expense) UnitPrice() kernel.Money {
	return e.unitPrice
}

// Total returns quantity × unit price.
func (e *Expense) Total() kernel.Money {
	return e.unitPrice.MulInt(e.quantity)
}

// PurchasedAt returns the purchase date.
func (e *Expense) PurchasedAt() time.Time {
	return e.purchasedAt
}

// ProofRef returns the optional receipt-photo reference, nil when absent.
func (e *Expense) ProofRef() *string {
	return e.proofRef
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setProposalID(proposalID kernel.UUID) error {
	if err := proposalID.Validate(); err != nil {
		return err
	}
	e.proposalID = proposalID
	return nil
}

func (e *Expense) setItemName(itemName string) error {
	if itemName == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	e.itemName = itemName
	return nil
}

func (e *Expense) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	e.quantity = quantity
	return nil
}

func (e *Expense) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	e.unitPrice = unitPrice
	return nil
}

func (e *Expense) setPurchasedAt(purchasedAt time.Time) error {
	if purchasedAt.IsZero() {
		return errs.NewValueIsRequiredError("purchasedAt")
	}
	e.purchasedAt = purchasedAt
	return nil
}

func (e *Expense) setProofRef(proofRef *string) error {
	if proofRef != nil && *proofRef == "" {
		return errs.NewValueIsRequiredError("proofRef")
	}
	e.proofRef = proofRef
	return nil
}
