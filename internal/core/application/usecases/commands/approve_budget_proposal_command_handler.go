package commands

import (
	"context"
)

// ApproveBudgetProposalCommandHandler implements the approval workflow.
// The proposal moving to Approved and the order moving to OnProgress commit
// together or not at all; a cancellation racing the approval makes the order
// transition fail, which rolls the proposal decision back too.
type ApproveBudgetProposalCommandHandler struct {
	uowFactory BudgetUoWFactory
}

// NewApproveBudgetProposalCommandHandler creates a handler for proposal approval.
func NewApproveBudgetProposalCommandHandler(uowFactory BudgetUoWFactory) ApproveBudgetProposalCommandHandler {
	return ApproveBudgetProposalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle approves the order's pending proposal and starts the work atomically.
func (h *ApproveBudgetProposalCommandHandler) Handle(ctx context.Context, cmd ApproveBudgetProposalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(ctx, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		proposalRepo := uow.ProposalRepository()
		proposal, err := proposalRepo.GetActiveByOrder(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = proposal.Approve(); err != nil {
			return err
		}

		if err = aggregate.Start(); err != nil {
			return err
		}

		if err = proposalRepo.Update(ctx, proposal); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
