// Package queries contains read-side operations of the CQRS split.
// Query handlers bypass the domain aggregates and read composed models
// straight from the database with raw SQL.
package queries

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderDetailQueryIsNotConstructed = errors.New(
	"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
)

// GetOrderDetailQuery retrieves the full composed view of one order: the
// order itself, its active proposal with items and spending, the evidence
// log and the client review.
type GetOrderDetailQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for one order's detail view.
func NewGetOrderDetailQuery(orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the order being read.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderDetailQueryResponse is the composed order view.
// Proposal and Review are nil when the order has none.
type GetOrderDetailQueryResponse struct {
	ID                     kernel.UUID
	ClientID               kernel.UUID
	Category               string
	Address                string
	ScheduledAt            time.Time
	Notes                  string
	RequiresBudgetApproval bool
	Status                 order.Status
	ForemanID              *kernel.UUID
	WorkerIDs              []kernel.UUID
	Progress               int

	Proposal      *ProposalDetail
	Documentation []DocumentationDetail
	Review        *ReviewDetail
}

// ProposalDetail is the active proposal with its items and actual spending.
// Variance is SpentTotal minus Total: negative while under budget.
type ProposalDetail struct {
	ID              kernel.UUID
	ForemanID       kernel.UUID
	Status          budget.Status
	Notes           string
	RejectionReason string
	CreatedAt       time.Time
	Total           decimal.Decimal
	Items           []ProposalItemDetail
	Expenses        []ExpenseDetail
	SpentTotal      decimal.Decimal
	Variance        decimal.Decimal
}

// ProposalItemDetail is one priced line of a proposal.
type ProposalItemDetail struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// ExpenseDetail is one recorded purchase against the proposal.
type ExpenseDetail struct {
	ID          kernel.UUID
	ItemName    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	PurchasedAt time.Time
	ProofRef    *string
}

// DocumentationDetail is one work-evidence entry, newest first in the view.
type DocumentationDetail struct {
	ID          kernel.UUID
	UploaderID  kernel.UUID
	FileRef     string
	Description string
	CreatedAt   time.Time
}

// ReviewDetail is the client's one-time rating of the completed order.
type ReviewDetail struct {
	ID        kernel.UUID
	ClientID  kernel.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}
