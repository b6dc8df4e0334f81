package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var ErrApproveBudgetProposalCommandIsNotConstructed = errors.New(
	"ApproveBudgetProposalCommand must be created via NewApproveBudgetProposalCommand constructor",
)

// ApproveBudgetProposalCommand approves an order's pending proposal and
// starts the work in one transaction.
type ApproveBudgetProposalCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	approverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveBudgetProposalCommand creates a command to approve a proposal.
func NewApproveBudgetProposalCommand(orderID kernel.UUID, approverID kernel.UUID) (ApproveBudgetProposalCommand, error) {
	cmd := ApproveBudgetProposalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setApproverID(approverID),
	); err != nil {
		return ApproveBudgetProposalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveBudgetProposalCommand) Validate() error {
	return c.guard.Validate(ErrApproveBudgetProposalCommandIsNotConstructed)
}

// OrderID returns the order whose proposal is being approved.
func (c ApproveBudgetProposalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ApproverID returns the client or admin approving the proposal.
func (c ApproveBudgetProposalCommand) ApproverID() kernel.UUID {
	return c.approverID
}

func (c *ApproveBudgetProposalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApproveBudgetProposalCommand) setApproverID(approverID kernel.UUID) error {
	if err := approverID.Validate(); err != nil {
		return err
	}

	c.approverID = approverID
	return nil
}
