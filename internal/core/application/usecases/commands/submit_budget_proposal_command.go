package commands

import (
	"errors"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrSubmitBudgetProposalCommandIsNotConstructed = errors.New(
		"SubmitBudgetProposalCommand must be created via NewSubmitBudgetProposalCommand constructor",
	)
	ErrProposalItemsAreRequired = errors.New("proposal items are required")
	// ErrActiveProposalExists is returned when the order already has a
	// proposal that is not Rejected. Resubmission requires a rejection first.
	ErrActiveProposalExists = errors.New("order already has an active proposal")
)

// SubmitBudgetProposalCommand submits a priced bill of materials for an order.
// The order must still be in NeedValidation and must not already carry an
// active (non-rejected) proposal.
type SubmitBudgetProposalCommand struct { //nolint:recvcheck //using for validation
	proposalID kernel.UUID
	orderID    kernel.UUID
	foremanID  kernel.UUID
	items      []budget.LineItem
	notes      string

	guard guard.ConstructorGuard
}

// NewSubmitBudgetProposalCommand creates a command to submit a budget proposal.
func NewSubmitBudgetProposalCommand(
	proposalID kernel.UUID,
	orderID kernel.UUID,
	foremanID kernel.UUID,
	items []budget.LineItem,
	notes string,
) (SubmitBudgetProposalCommand, error) {
	cmd := SubmitBudgetProposalCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProposalID(proposalID),
		cmd.setOrderID(orderID),
		cmd.setForemanID(foremanID),
		cmd.setItems(items),
	); err != nil {
		return SubmitBudgetProposalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitBudgetProposalCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBudgetProposalCommandIsNotConstructed)
}

// ProposalID returns the new proposal's identifier.
func (c SubmitBudgetProposalCommand) ProposalID() kernel.UUID {
	return c.proposalID
}

// OrderID returns the order being budgeted.
func (c SubmitBudgetProposalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ForemanID returns the submitting foreman.
func (c SubmitBudgetProposalCommand) ForemanID() kernel.UUID {
	return c.foremanID
}

// Items returns the priced line items.
func (c SubmitBudgetProposalCommand) Items() []budget.LineItem {
	return c.items
}

// Notes returns the foreman's free-text notes.
func (c SubmitBudgetProposalCommand) Notes() string {
	return c.notes
}

func (c *SubmitBudgetProposalCommand) setProposalID(proposalID kernel.UUID) error {
	if err := proposalID.Validate(); err != nil {
		return err
	}

	c.proposalID = proposalID
	return nil
}

func (c *SubmitBudgetProposalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitBudgetProposalCommand) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}

	c.foremanID = foremanID
	return nil
}

func (c *SubmitBudgetProposalCommand) setItems(items []budget.LineItem) error {
	if len(items) == 0 {
		return ErrProposalItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
