package commands

import (
	"context"

	"bizza/internal/pkg/errs"
)

// StartOrderCommandHandler starts work on orders that carry no budget gate.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartOrderCommandHandler creates a handler for explicit order starts.
func NewStartOrderCommandHandler(uowFactory OrderUoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to OnProgress. A gated order fails with an
// InvalidTransitionError pointing at proposal approval as the only way in.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) error {
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

		if aggregate.RequiresBudgetApproval() {
			return errs.NewInvalidTransitionError(
				"order", aggregate.ID().String(), aggregate.Status().String(),
				"start without budget approval",
			)
		}

		if err = aggregate.Start(); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
}
