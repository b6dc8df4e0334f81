package commands

import (
	"context"

	"bizza/internal/core/domain/model/budget"
)

// RecordExpenseCommandHandler appends purchases to an approved proposal.
// The proposal aggregate gates the operation: spending against a pending
// or rejected proposal fails with a BudgetNotApprovedError.
type RecordExpenseCommandHandler struct {
	uowFactory ProposalUoWFactory
}

// NewRecordExpenseCommandHandler creates a handler for expense recording.
func NewRecordExpenseCommandHandler(uowFactory ProposalUoWFactory) RecordExpenseCommandHandler {
	return RecordExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the expense. Overspending the proposal total is allowed;
// the variance shows up in the order detail read model instead.
func (h *RecordExpenseCommandHandler) Handle(ctx context.Context, cmd RecordExpenseCommand) error {
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

	proposalRepo := uow.ProposalRepository()
	proposal, err := proposalRepo.Get(ctx, cmd.ProposalID())
	if err != nil {
		return err
	}

	if err = proposal.ValidateCanRecordExpense(); err != nil {
		return err
	}

	expense, err := budget.NewExpense(
		cmd.ExpenseID(),
		cmd.ProposalID(),
		cmd.ItemName(),
		cmd.Quantity(),
		cmd.UnitPrice(),
		cmd.PurchasedAt(),
		cmd.ProofRef(),
	)
	if err != nil {
		return err
	}

	if err = proposalRepo.AddExpense(ctx, expense); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
