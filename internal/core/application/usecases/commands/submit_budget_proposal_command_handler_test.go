package commands_test

import (
	"testing"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func submitProposalCommand(t *testing.T, orderID kernel.UUID) commands.SubmitBudgetProposalCommand {
	t.Helper()
	cmd, err := commands.NewSubmitBudgetProposalCommand(
		kernel.NewUUID(), orderID, kernel.NewUUID(), testItems(t), "",
	)
	require.NoError(t, err)
	return cmd
}

func TestNewSubmitBudgetProposalCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewSubmitBudgetProposalCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrProposalItemsAreRequired)
}

func TestSubmitBudgetProposalCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, true)
	cmd := submitProposalCommand(t, aggregate.ID())

	orderRepo := new(MockOrderRepository)
	proposalRepo := new(MockProposalRepository)
	uow := new(MockUoW)
	notFound := errs.NewObjectNotFoundError("proposal", aggregate.ID().String())
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProposalRepository").Return(proposalRepo).Once(),
		proposalRepo.On("GetActiveByOrder", mock.Anything, aggregate.ID()).Return(nil, notFound).Once(),
		proposalRepo.On("Add", mock.Anything, mock.AnythingOfType("*budget.Proposal")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitBudgetProposalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	proposalRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSubmitBudgetProposalCommandHandler_Handle_ActiveProposalExists(t *testing.T) {
	ctx := t.Context()
	aggregate := newPendingOrder(t, true)
	existing := newPendingProposal(t, aggregate.ID())
	cmd := submitProposalCommand(t, aggregate.ID())

	orderRepo := new(MockOrderRepository)
	proposalRepo := new(MockProposalRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ProposalRepository").Return(proposalRepo).Once(),
		proposalRepo.On("GetActiveByOrder", mock.Anything, aggregate.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitBudgetProposalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActiveProposalExists)
	proposalRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitBudgetProposalCommandHandler_Handle_OrderNotAwaitingValidation(t *testing.T) {
	ctx := t.Context()
	aggregate := newOrderInStatus(t, order.OnProgress, 40)
	cmd := submitProposalCommand(t, aggregate.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBudgetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitBudgetProposalCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestSubmitBudgetProposalCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockBudgetUoWFactory)
	h := commands.NewSubmitBudgetProposalCommandHandler(factory)
	err := h.Handle(ctx, commands.SubmitBudgetProposalCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
