// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bizza/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProposalRepoFactory provides access to proposal repository within a transaction.
	ProposalRepoFactory interface {
		ProposalRepository() ports.ProposalRepository
	}

	// CrewRepoFactory provides access to crew repository within a transaction.
	CrewRepoFactory interface {
		CrewRepository() ports.CrewRepository
	}

	// ReviewRepoFactory provides access to review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ProposalUoW manages transactions for proposal-only operations.
	ProposalUoW interface {
		TxManager
		ProposalRepoFactory
	}

	// ProposalUoWFactory creates new proposal unit of work instances.
	ProposalUoWFactory interface {
		Create() ProposalUoW
	}

	// CrewUoW manages transactions for roster-only operations.
	CrewUoW interface {
		TxManager
		CrewRepoFactory
	}

	// CrewUoWFactory creates new crew unit of work instances.
	CrewUoWFactory interface {
		Create() CrewUoW
	}

	// BudgetUoW manages transactions across order and proposal aggregates.
	// Used for the approval workflow, where a proposal decision and the order
	// state change must commit or roll back together.
	BudgetUoW interface {
		TxManager
		OrderRepoFactory
		ProposalRepoFactory
	}

	// BudgetUoWFactory creates new budget unit of work instances.
	BudgetUoWFactory interface {
		Create() BudgetUoW
	}

	// AssignUoW manages transactions across order and crew aggregates.
	// Used when binding a crew, which reads the roster to advise on
	// specialty mismatches while updating the order.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		CrewRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// ReviewUoW manages transactions across order and review aggregates.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
