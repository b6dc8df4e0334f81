package ports

import (
	"context"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
)

// ProposalRepository defines the persistence contract for budget proposals,
// their line items and the expenses recorded against them.
type ProposalRepository interface {
	// Add persists a new proposal with its line items.
	Add(ctx context.Context, aggregate *budget.Proposal) error

	// Update persists changes to an existing proposal, replacing its line
	// items, guarded by the aggregate's version. A stale version fails with
	// ConcurrencyConflictError.
	Update(ctx context.Context, aggregate *budget.Proposal) error

	// Get retrieves a proposal by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*budget.Proposal, error)

	// GetActiveByOrder retrieves the order's proposal that is not Rejected.
	// Returns ObjectNotFoundError when every proposal was rejected or none
	// exists; the caller decides whether that is an error.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*budget.Proposal, error)

	// AddExpense appends an expense entry to a proposal.
	AddExpense(ctx context.Context, expense *budget.Expense) error

	// GetExpenses retrieves all expenses recorded against a proposal,
	// oldest first.
	GetExpenses(ctx context.Context, proposalID kernel.UUID) ([]*budget.Expense, error)
}
