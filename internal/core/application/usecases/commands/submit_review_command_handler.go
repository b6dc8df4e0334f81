package commands

import (
	"context"
	"errors"

	"bizza/internal/core/domain/model/order"
	"bizza/internal/core/domain/model/review"
	"bizza/internal/pkg/errs"
)

// SubmitReviewCommandHandler records client ratings of completed orders.
// The write-once rule is enforced twice: the handler refuses when a review
// already exists, and the repository maps the unique index violation to
// review.ErrDuplicateReview, so two racing submissions still produce
// exactly one review.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the review. Only Done orders may be reviewed.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
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

	if aggregate.Status() != order.Done {
		return errs.NewInvalidTransitionError(
			"order", aggregate.ID().String(), aggregate.Status().String(),
			"submit review",
		)
	}

	reviewRepo := uow.ReviewRepository()
	if _, err = reviewRepo.GetByOrder(ctx, cmd.OrderID()); err == nil {
		return review.ErrDuplicateReview
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	entity, err := review.NewReview(
		cmd.ReviewID(),
		cmd.OrderID(),
		cmd.ClientID(),
		cmd.Rating(),
		cmd.Comment(),
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, entity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
