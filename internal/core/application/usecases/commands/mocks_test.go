package commands_test

// Shared testify mocks for the command handler tests. One mock unit of work
// implements every repository factory, so each test wires only the
// repositories its handler touches.

import (
	"context"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/core/domain/model/review"
	"bizza/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AddDocumentation(ctx context.Context, doc *order.Documentation) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

type MockProposalRepository struct{ mock.Mock }

func (m *MockProposalRepository) Add(ctx context.Context, aggregate *budget.Proposal) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProposalRepository) Update(ctx context.Context, aggregate *budget.Proposal) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockProposalRepository) Get(ctx context.Context, id kernel.UUID) (*budget.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*budget.Proposal, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*budget.Proposal), args.Error(1)
}

func (m *MockProposalRepository) AddExpense(ctx context.Context, expense *budget.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockProposalRepository) GetExpenses(ctx context.Context, proposalID kernel.UUID) ([]*budget.Expense, error) {
	args := m.Called(ctx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*budget.Expense), args.Error(1)
}

type MockCrewRepository struct{ mock.Mock }

func (m *MockCrewRepository) Add(ctx context.Context, aggregate *crew.TeamMember) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCrewRepository) Update(ctx context.Context, aggregate *crew.TeamMember) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCrewRepository) Get(ctx context.Context, id kernel.UUID) (*crew.TeamMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crew.TeamMember), args.Error(1)
}

func (m *MockCrewRepository) GetByForeman(ctx context.Context, foremanID kernel.UUID) ([]*crew.TeamMember, error) {
	args := m.Called(ctx, foremanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*crew.TeamMember), args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockReviewRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

// MockUoW satisfies every command unit-of-work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProposalRepository() ports.ProposalRepository {
	args := m.Called()
	return args.Get(0).(ports.ProposalRepository)
}

func (m *MockUoW) CrewRepository() ports.CrewRepository {
	args := m.Called()
	return args.Get(0).(ports.CrewRepository)
}

func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	args := m.Called()
	return args.Get(0).(ports.ReviewRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockProposalUoWFactory struct{ mock.Mock }

func (m *MockProposalUoWFactory) Create() commands.ProposalUoW {
	args := m.Called()
	return args.Get(0).(commands.ProposalUoW)
}

type MockCrewUoWFactory struct{ mock.Mock }

func (m *MockCrewUoWFactory) Create() commands.CrewUoW {
	args := m.Called()
	return args.Get(0).(commands.CrewUoW)
}

type MockBudgetUoWFactory struct{ mock.Mock }

func (m *MockBudgetUoWFactory) Create() commands.BudgetUoW {
	args := m.Called()
	return args.Get(0).(commands.BudgetUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}
