package commands

import (
	"context"
)

// UpdateProposalItemsCommandHandler revises the line items of a pending
// proposal. Approved and rejected proposals are immutable and fail the
// aggregate's own check.
type UpdateProposalItemsCommandHandler struct {
	uowFactory ProposalUoWFactory
}

// NewUpdateProposalItemsCommandHandler creates a handler for item revisions.
func NewUpdateProposalItemsCommandHandler(uowFactory ProposalUoWFactory) UpdateProposalItemsCommandHandler {
	return UpdateProposalItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the proposal's items and recomputed total.
func (h *UpdateProposalItemsCommandHandler) Handle(ctx context.Context, cmd UpdateProposalItemsCommand) error {
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
		proposal, err := proposalRepo.Get(ctx, cmd.ProposalID())
		if err != nil {
			return err
		}

		if err = proposal.UpdateItems(cmd.Items()); err != nil {
			return err
		}

		if err = proposalRepo.Update(ctx, proposal); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
