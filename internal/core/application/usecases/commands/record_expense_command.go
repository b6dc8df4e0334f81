package commands

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
	"bizza/internal/pkg/guard"
)

var (
	ErrRecordExpenseCommandIsNotConstructed = errors.New(
		"RecordExpenseCommand must be created via NewRecordExpenseCommand constructor",
	)
	ErrExpenseItemNameIsRequired = errors.New("expense item name is required")
	ErrPurchasedAtIsRequired     = errors.New("purchase date is required")
)

// RecordExpenseCommand logs an actual purchase against an approved proposal.
// Expenses are append-only; there is no edit or delete path.
type RecordExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID   kernel.UUID
	proposalID  kernel.UUID
	itemName    string
	quantity    int
	unitPrice   kernel.Money
	purchasedAt time.Time
	proofRef    *string

	guard guard.ConstructorGuard
}

// NewRecordExpenseCommand creates a command to record an expense.
func NewRecordExpenseCommand(
	expenseID kernel.UUID,
	proposalID kernel.UUID,
	itemName string,
	quantity int,
	unitPrice kernel.Money,
	purchasedAt time.Time,
	proofRef *string,
) (RecordExpenseCommand, error) {
	cmd := RecordExpenseCommand{
		proofRef: proofRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpenseID(expenseID),
		cmd.setProposalID(proposalID),
		cmd.setItemName(itemName),
		cmd.setQuantity(quantity),
		cmd.setUnitPrice(unitPrice),
		cmd.setPurchasedAt(purchasedAt),
	); err != nil {
		return RecordExpenseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordExpenseCommand) Validate() error {
	return c.guard.Validate(ErrRecordExpenseCommandIsNotConstructed)
}

// ExpenseID returns the new expense's identifier.
func (c RecordExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

// ProposalID returns the approved proposal the expense belongs to.
func (c RecordExpenseCommand) ProposalID() kernel.UUID {
	return c.proposalID
}

// ItemName returns what was purchased.
func (c RecordExpenseCommand) ItemName() string {
	return c.itemName
}

// Quantity returns how many units were purchased.
func (c RecordExpenseCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the price paid per unit.
func (c RecordExpenseCommand) UnitPrice() kernel.Money {
	return c.unitPrice
}

// PurchasedAt returns when the purchase was made.
func (c RecordExpenseCommand) PurchasedAt() time.Time {
	return c.purchasedAt
}

// ProofRef returns the optional receipt reference.
func (c RecordExpenseCommand) ProofRef() *string {
	return c.proofRef
}

func (c *RecordExpenseCommand) setExpenseID(expenseID kernel.UUID) error {
	if err := expenseID.Validate(); err != nil {
		return err
	}

	c.expenseID = expenseID
	return nil
}

func (c *RecordExpenseCommand) setProposalID(proposalID kernel.UUID) error {
	if err := proposalID.Validate(); err != nil {
		return err
	}

	c.proposalID = proposalID
	return nil
}

func (c *RecordExpenseCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrExpenseItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *RecordExpenseCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	c.quantity = quantity
	return nil
}

func (c *RecordExpenseCommand) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}

	c.unitPrice = unitPrice
	return nil
}

func (c *RecordExpenseCommand) setPurchasedAt(purchasedAt time.Time) error {
	if purchasedAt.IsZero() {
		return ErrPurchasedAtIsRequired
	}

	c.purchasedAt = purchasedAt
	return nil
}
