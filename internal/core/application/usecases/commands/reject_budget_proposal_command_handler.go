package commands

import (
	"context"
)

// RejectBudgetProposalCommandHandler turns down pending proposals.
// The order is not touched: it remains in NeedValidation awaiting a
// revised proposal.
type RejectBudgetProposalCommandHandler struct {
	uowFactory ProposalUoWFactory
}

// NewRejectBudgetProposalCommandHandler creates a handler for proposal rejection.
func NewRejectBudgetProposalCommandHandler(uowFactory ProposalUoWFactory) RejectBudgetProposalCommandHandler {
	return RejectBudgetProposalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle rejects the order's pending proposal with the client's reason.
func (h *RejectBudgetProposalCommandHandler) Handle(ctx context.Context, cmd RejectBudgetProposalCommand) error {
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

		proposalRepo := uow.ProposalRepository()
		proposal, err := proposalRepo.GetActiveByOrder(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = proposal.Reject(cmd.Reason()); err != nil {
			return err
		}

		if err = proposalRepo.Update(ctx, proposal); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
