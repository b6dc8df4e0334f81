package commands_test

import (
	"testing"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/core/domain/model/review"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submitReviewCommand(t *testing.T, orderID kernel.UUID, rating int) commands.SubmitReviewCommand {
	t.Helper()
	cmd, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), orderID, kernel.NewUUID(), rating, "tidy work",
	)
	require.NoError(t, err)
	return cmd
}

func TestSubmitReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Done, 100)
	cmd := submitReviewCommand(t, aggregate.ID(), 5)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrder", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("review", aggregate.ID().String())).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_OrderNotDone(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.OnProgress, 90)
	cmd := submitReviewCommand(t, aggregate.ID(), 4)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestSubmitReviewCommandHandler_Handle_CancelledOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Cancelled, 0)
	cmd := submitReviewCommand(t, aggregate.ID(), 3)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestSubmitReviewCommandHandler_Handle_InvalidRating(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Done, 100)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrder", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("review", aggregate.ID().String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	// Rating bounds live in the review entity, not the command: the bad
	// value only surfaces when the handler builds the entity.
	outOfRange, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), aggregate.ID(), kernel.NewUUID(), 6, "",
	)
	require.NoError(t, err)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err = h.Handle(ctx, outOfRange)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestSubmitReviewCommandHandler_Handle_DuplicateReview(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Done, 100)
	cmd := submitReviewCommand(t, aggregate.ID(), 4)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrder", mock.Anything, aggregate.ID()).
			Return(nil, errs.NewObjectNotFoundError("review", aggregate.ID().String())).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(review.ErrDuplicateReview).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, review.ErrDuplicateReview)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestSubmitReviewCommandHandler_Handle_ExistingReviewRefused(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.Done, 100)
	cmd := submitReviewCommand(t, aggregate.ID(), 4)

	existing, err := review.NewReview(
		kernel.NewUUID(), aggregate.ID(), kernel.NewUUID(), 5, "already reviewed",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, review.ErrDuplicateReview)
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
