package commands_test

import (
	"testing"
	"time"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func recordExpenseCommand(t *testing.T, proposalID kernel.UUID, proofRef *string) commands.RecordExpenseCommand {
	t.Helper()
	price, err := kernel.MoneyFromString("52500")
	require.NoError(t, err)
	cmd, err := commands.NewRecordExpenseCommand(
		kernel.NewUUID(), proposalID, "Semen", 2, price,
		time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC), proofRef,
	)
	require.NoError(t, err)
	return cmd
}

func TestNewRecordExpenseCommand_InvalidQuantity(t *testing.T) {
	price, err := kernel.MoneyFromString("52500")
	require.NoError(t, err)
	_, err = commands.NewRecordExpenseCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Semen", 0, price,
		time.Date(2025, 7, 15, 14, 30, 0, 0, time.UTC), nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRecordExpenseCommand_ZeroPurchasedAt(t *testing.T) {
	price, err := kernel.MoneyFromString("52500")
	require.NoError(t, err)
	_, err = commands.NewRecordExpenseCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Semen", 2, price, time.Time{}, nil,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPurchasedAtIsRequired)
}

func TestRecordExpenseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	proposal := newPendingProposal(t, kernel.NewUUID())
	require.NoError(t, proposal.Approve())
	proof := "receipts/2025/07/semen.jpg"
	cmd := recordExpenseCommand(t, proposal.ID(), &proof)

	repo := new(MockProposalRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProposalRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		repo.On("AddExpense", mock.Anything, mock.AnythingOfType("*budget.Expense")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProposalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordExpenseCommandHandler_Handle_PendingProposalRejected(t *testing.T) {
	ctx := t.Context()
	proposal := newPendingProposal(t, kernel.NewUUID())
	cmd := recordExpenseCommand(t, proposal.ID(), nil)

	repo := new(MockProposalRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProposalRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProposalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetNotApproved)

	var notApproved *budget.BudgetNotApprovedError
	require.ErrorAs(t, err, &notApproved)
	assert.Equal(t, "PendingApproval", notApproved.State)
	repo.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestRecordExpenseCommandHandler_Handle_RejectedProposalRejected(t *testing.T) {
	ctx := t.Context()
	proposal := newPendingProposal(t, kernel.NewUUID())
	require.NoError(t, proposal.Reject("too expensive"))
	cmd := recordExpenseCommand(t, proposal.ID(), nil)

	repo := new(MockProposalRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProposalRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, proposal.ID()).Return(proposal, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProposalUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordExpenseCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, budget.ErrBudgetNotApproved)
}
