// Package proposalrepo provides data transfer objects and mapping functions for
// budget-proposal persistence, covering the proposal row, its line items and
// the expenses recorded against it.
package proposalrepo

import (
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProposalDTO represents the database structure for persisting budget proposals.
// The at-most-one-active rule is enforced by the submit command, which checks
// for a non-rejected proposal on the order inside its transaction.
type ProposalDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index"`
	ForemanID       uuid.UUID       `gorm:"type:uuid;index"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status          int             `gorm:"index"`
	Notes           string          `gorm:"type:text"`
	RejectionReason string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:""`
	Version         int             `gorm:""`
	Items           []LineItemDTO   `gorm:"foreignKey:ProposalID"`
}

// TableName specifies the database table name for proposal entities.
func (ProposalDTO) TableName() string {
	return "budget_proposals"
}

// LineItemDTO represents one priced line of a proposal. Position preserves
// the order the foreman listed the items in.
type LineItemDTO struct {
	ProposalID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey"`
	Name       string          `gorm:"type:varchar(256)"`
	Quantity   int             `gorm:""`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(14,2)"`
}

// TableName specifies the database table name for proposal line items.
func (LineItemDTO) TableName() string {
	return "proposal_items"
}

// ExpenseDTO represents an actual purchase recorded against a proposal.
type ExpenseDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProposalID  uuid.UUID       `gorm:"type:uuid;index"`
	ItemName    string          `gorm:"type:varchar(256)"`
	Quantity    int             `gorm:""`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2)"`
	PurchasedAt time.Time       `gorm:""`
	ProofRef    *string         `gorm:"type:text"`
}

// TableName specifies the database table name for expenses.
func (ExpenseDTO) TableName() string {
	return "proposal_expenses"
}

// fromDomain converts a proposal aggregate to its database representation.
func fromDomain(aggregate *budget.Proposal) ProposalDTO {
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ProposalID: aggregate.ID().Bytes(),
			Position:   position,
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
		})
	}

	return ProposalDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		ForemanID:       aggregate.ForemanID().Bytes(),
		Total:           aggregate.Total().Decimal(),
		Status:          int(aggregate.Status()),
		Notes:           aggregate.Notes(),
		RejectionReason: aggregate.RejectionReason(),
		CreatedAt:       aggregate.CreatedAt(),
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// toDomain converts a database DTO to a proposal aggregate using RestoreProposal.
// The total is recomputed from the items rather than read back from the row.
func toDomain(dto ProposalDTO) (*budget.Proposal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	foremanID, err := kernel.UUIDFromBytes(dto.ForemanID[:])
	if err != nil {
		return nil, err
	}

	items := make([]budget.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoneyFromDecimal(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := budget.NewLineItem(itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return budget.RestoreProposal(
		id, orderID, foremanID, items, dto.Notes,
		budget.Status(dto.Status), dto.RejectionReason, dto.CreatedAt, dto.Version,
	)
}

// expenseFromDomain converts an expense entry to its database representation.
func expenseFromDomain(expense *budget.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID().Bytes(),
		ProposalID:  expense.ProposalID().Bytes(),
		ItemName:    expense.ItemName(),
		Quantity:    expense.Quantity(),
		UnitPrice:   expense.UnitPrice().Decimal(),
		PurchasedAt: expense.PurchasedAt(),
		ProofRef:    expense.ProofRef(),
	}
}

// expenseToDomain converts a database DTO to an expense entry.
func expenseToDomain(dto ExpenseDTO) (*budget.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	proposalID, err := kernel.UUIDFromBytes(dto.ProposalID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return budget.RestoreExpense(id, proposalID, dto.ItemName, dto.Quantity, price, dto.PurchasedAt, dto.ProofRef)
}
