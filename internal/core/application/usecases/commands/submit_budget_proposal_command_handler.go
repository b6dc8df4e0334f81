package commands

import (
	"context"
	"errors"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"
)

// SubmitBudgetProposalCommandHandler submits budget proposals for orders
// awaiting validation. At most one proposal per order may be active; a
// rejected proposal frees the slot for resubmission.
type SubmitBudgetProposalCommandHandler struct {
	uowFactory BudgetUoWFactory
}

// NewSubmitBudgetProposalCommandHandler creates a handler for proposal submission.
func NewSubmitBudgetProposalCommandHandler(uowFactory BudgetUoWFactory) SubmitBudgetProposalCommandHandler {
	return SubmitBudgetProposalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the order state, enforces the single-active-proposal rule
// and persists the new proposal in PendingApproval.
func (h *SubmitBudgetProposalCommandHandler) Handle(ctx context.Context, cmd SubmitBudgetProposalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() != order.NeedValidation {
		return errs.NewInvalidTransitionError(
			"order", aggregate.ID().String(), aggregate.Status().String(), "submit budget proposal",
		)
	}

	proposalRepo := uow.ProposalRepository()
	if _, err = proposalRepo.GetActiveByOrder(ctx, cmd.OrderID()); err == nil {
		return ErrActiveProposalExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	proposal, err := budget.NewProposal(
		cmd.ProposalID(), cmd.OrderID(), cmd.ForemanID(), cmd.Items(), cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = proposalRepo.Add(ctx, proposal); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
