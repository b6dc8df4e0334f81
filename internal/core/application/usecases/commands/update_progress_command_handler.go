package commands

import (
	"context"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
)

// UpdateProgressCommandHandler advances completion of in-progress orders.
// A cancellation racing a progress update loses on the version check, gets
// retried, and then fails the status check against the fresh Cancelled row.
type UpdateProgressCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateProgressCommandHandler creates a handler for progress updates.
func NewUpdateProgressCommandHandler(uowFactory OrderUoWFactory) UpdateProgressCommandHandler {
	return UpdateProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new percentage. Progress is monotonic and reaching 100
// moves the order to Done.
func (h *UpdateProgressCommandHandler) Handle(ctx context.Context, cmd UpdateProgressCommand) error {
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

		if err = aggregate.AdvanceProgress(cmd.Percent()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if cmd.HasEvidence() {
			doc, docErr := order.NewDocumentation(
				kernel.NewUUID(),
				aggregate.ID(),
				cmd.EvidenceUploaderID(),
				cmd.EvidenceFileRef(),
				cmd.EvidenceNote(),
			)
			if docErr != nil {
				return docErr
			}

			if err = orderRepo.AddDocumentation(ctx, doc); err != nil {
				return err
			}
		}

		return uow.Commit(ctx)
	})
}
