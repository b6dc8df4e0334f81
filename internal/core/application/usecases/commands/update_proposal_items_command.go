package commands

import (
	"errors"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var ErrUpdateProposalItemsCommandIsNotConstructed = errors.New(
	"UpdateProposalItemsCommand must be created via NewUpdateProposalItemsCommand constructor",
)

// UpdateProposalItemsCommand replaces the line items of a proposal that has
// not been decided yet. The total is recomputed from the new items.
type UpdateProposalItemsCommand struct { //nolint:recvcheck //using for validation
	proposalID kernel.UUID
	items      []budget.LineItem

	guard guard.ConstructorGuard
}

// NewUpdateProposalItemsCommand creates a command to revise proposal items.
func NewUpdateProposalItemsCommand(proposalID kernel.UUID, items []budget.LineItem) (UpdateProposalItemsCommand, error) {
	cmd := UpdateProposalItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProposalID(proposalID),
		cmd.setItems(items),
	); err != nil {
		return UpdateProposalItemsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProposalItemsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProposalItemsCommandIsNotConstructed)
}

// ProposalID returns the proposal being revised.
func (c UpdateProposalItemsCommand) ProposalID() kernel.UUID {
	return c.proposalID
}

// Items returns the replacement line items.
func (c UpdateProposalItemsCommand) Items() []budget.LineItem {
	return c.items
}

func (c *UpdateProposalItemsCommand) setProposalID(proposalID kernel.UUID) error {
	if err := proposalID.Validate(); err != nil {
		return err
	}

	c.proposalID = proposalID
	return nil
}

func (c *UpdateProposalItemsCommand) setItems(items []budget.LineItem) error {
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
