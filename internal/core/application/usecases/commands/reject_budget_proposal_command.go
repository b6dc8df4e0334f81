package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrRejectBudgetProposalCommandIsNotConstructed = errors.New(
		"RejectBudgetProposalCommand must be created via NewRejectBudgetProposalCommand constructor",
	)
	ErrRejectionReasonIsRequired = errors.New("rejection reason is required")
)

// RejectBudgetProposalCommand turns down an order's pending proposal.
// The order stays in NeedValidation so the foreman can submit a revised
// proposal.
type RejectBudgetProposalCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

// NewRejectBudgetProposalCommand creates a command to reject a proposal.
func NewRejectBudgetProposalCommand(orderID kernel.UUID, reason string) (RejectBudgetProposalCommand, error) {
	cmd := RejectBudgetProposalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return RejectBudgetProposalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectBudgetProposalCommand) Validate() error {
	return c.guard.Validate(ErrRejectBudgetProposalCommandIsNotConstructed)
}

// OrderID returns the order whose proposal is being rejected.
func (c RejectBudgetProposalCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the client's explanation for the rejection.
func (c RejectBudgetProposalCommand) Reason() string {
	return c.reason
}

func (c *RejectBudgetProposalCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RejectBudgetProposalCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	c.reason = reason
	return nil
}
