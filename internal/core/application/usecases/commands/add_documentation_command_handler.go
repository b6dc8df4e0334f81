package commands

import (
	"context"

	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"
)

// AddDocumentationCommandHandler records work evidence against an order.
// Evidence may be attached at any point of a live order, including after
// completion; only cancelled orders refuse new entries.
type AddDocumentationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddDocumentationCommandHandler creates a handler for evidence uploads.
func NewAddDocumentationCommandHandler(uowFactory OrderUoWFactory) AddDocumentationCommandHandler {
	return AddDocumentationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle appends the documentation entry to the order's evidence log.
func (h *AddDocumentationCommandHandler) Handle(ctx context.Context, cmd AddDocumentationCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Cancelled {
		return errs.NewInvalidTransitionError(
			"order", aggregate.ID().String(), aggregate.Status().String(),
			"add documentation",
		)
	}

	doc, err := order.NewDocumentation(
		cmd.DocumentationID(),
		cmd.OrderID(),
		cmd.UploaderID(),
		cmd.FileRef(),
		cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = orderRepo.AddDocumentation(ctx, doc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
