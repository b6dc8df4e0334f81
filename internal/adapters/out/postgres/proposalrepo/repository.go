package proposalrepo

import (
	"context"
	"errors"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProposalRepository implements ProposalRepository using GORM.
type GormProposalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProposalRepository creates a new GORM proposal repository.
func NewGormProposalRepository(db *gorm.DB, tracker aggregateTracker) *GormProposalRepository {
	return &GormProposalRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new proposal and its line items to the database.
func (r *GormProposalRepository) Add(ctx context.Context, aggregate *budget.Proposal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing proposal, replacing its line items. The write is
// guarded by the version the aggregate was loaded with.
func (r *GormProposalRepository) Update(ctx context.Context, aggregate *budget.Proposal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProposalDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"total":            dto.Total,
			"status":           dto.Status,
			"notes":            dto.Notes,
			"rejection_reason": dto.RejectionReason,
			"version":          aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("proposal", aggregate.ID().String())
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a proposal by ID, including its line items.
func (r *GormProposalRepository) Get(ctx context.Context, id kernel.UUID) (*budget.Proposal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProposalDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proposal", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's non-rejected proposal.
func (r *GormProposalRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*budget.Proposal, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ProposalDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("order_id = ? AND status <> ?", orderID.Bytes(), int(budget.Rejected)).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proposal", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddExpense appends an expense entry. Expenses are never updated.
func (r *GormProposalRepository) AddExpense(ctx context.Context, expense *budget.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	dto := expenseFromDomain(expense)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(expense.ID(), expense)
	return nil
}

// GetExpenses retrieves all expenses recorded against a proposal, oldest first.
func (r *GormProposalRepository) GetExpenses(ctx context.Context, proposalID kernel.UUID) ([]*budget.Expense, error) {
	if err := proposalID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ExpenseDTO
	err := r.db.WithContext(ctx).
		Order("purchased_at").
		Find(&dtos, "proposal_id = ?", proposalID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	expenses := make([]*budget.Expense, 0, len(dtos))
	for _, dto := range dtos {
		expense, expenseErr := expenseToDomain(dto)
		if expenseErr != nil {
			return nil, expenseErr
		}
		expenses = append(expenses, expense)
	}

	return expenses, nil
}

func (r *GormProposalRepository) replaceItems(ctx context.Context, dto ProposalDTO) error {
	if err := r.db.WithContext(ctx).
		Delete(&LineItemDTO{}, "proposal_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Items).Error
}
