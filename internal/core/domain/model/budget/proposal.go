package budget

import (
	"errors"
	"fmt"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProposalIsNotConstructed is returned when a Proposal instance was not
	// created through the NewProposal factory method.
	ErrProposalIsNotConstructed = errors.New("Proposal must be created via NewProposal constructor")

	// ErrBudgetNotApproved indicates an attempt to record an expense against
	// a proposal that has not been approved by the client.
	ErrBudgetNotApproved = errors.New("expenses can only be recorded against an approved proposal")
)

// BudgetNotApprovedError carries the proposal identifier and its current
// state when an expense is recorded against a non-approved proposal.
type BudgetNotApprovedError struct {
	ProposalID string
	State      string
}

func (e *BudgetNotApprovedError) Error() string {
	return fmt.Sprintf("%s: ID is: %s, state is: %s", ErrBudgetNotApproved, e.ProposalID, e.State)
}

func (e *BudgetNotApprovedError) Unwrap() error {
	return ErrBudgetNotApproved
}

// Proposal is the budget-proposal (RAB) aggregate root: an itemized cost
// estimate a foreman submits for client approval before gated work starts.
//
// Proposal follows these invariants:
//   - Must reference a valid order and foreman
//   - Holds an ordered, non-empty sequence of validated line items
//   - Its total always equals the sum of the current line-item subtotals,
//     recomputed on every item mutation
//   - Line items are editable only while PendingApproval; Approved and
//     Rejected proposals are immutable
//   - Expenses may only be recorded once the proposal is Approved
//
// At-most-one-active-per-order is a cross-aggregate invariant enforced by
// the submit-proposal use case, not here.
type Proposal struct {
	// id is the unique identifier for the proposal
	id kernel.UUID

	// orderID references the order the estimate belongs to
	orderID kernel.UUID

	// foremanID references the submitting foreman
	foremanID kernel.UUID

	// items is the ordered sequence of priced rows
	items []LineItem

	// total is the cached sum of item subtotals, kept in sync by mutations
	total kernel.Money

	// status represents the approval state
	status Status

	// notes carries the foreman's free-text remarks
	notes string

	// rejectionReason holds the client's reason when status is Rejected
	rejectionReason string

	// createdAt is when the proposal was submitted
	createdAt time.Time

	// version is the optimistic-lock counter maintained by persistence
	version int

	// isConstructed ensures the proposal was created via a constructor
	isConstructed bool
}

// NewProposal creates a new Proposal in PendingApproval with its total
// computed from the given items.
//
// Parameters:
//   - id: Unique identifier for the proposal
//   - orderID: The order being estimated
//   - foremanID: The submitting foreman
//   - items: Ordered line items (must not be empty; each must be valid)
//   - notes: Free-text remarks (may be empty)
//
// Returns the proposal, or a validation error if any parameter is invalid.
func NewProposal(
	id kernel.UUID,
	orderID kernel.UUID,
	foremanID kernel.UUID,
	items []LineItem,
	notes string,
) (*Proposal, error) {
	proposal := &Proposal{
		status:        PendingApproval,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		proposal.setID(id),
		proposal.setOrderID(orderID),
		proposal.setForemanID(foremanID),
		proposal.setItems(items),
	); err != nil {
		return nil, err
	}

	return proposal, nil
}

// RestoreProposal reconstructs a Proposal from persistent storage, including
// its approval state, rejection reason and optimistic-lock version.
func RestoreProposal(
	id kernel.UUID,
	orderID kernel.UUID,
	foremanID kernel.UUID,
	items []LineItem,
	notes string,
	status Status,
	rejectionReason string,
	createdAt time.Time,
	version int,
) (*Proposal, error) {
	proposal := &Proposal{
		notes:           notes,
		rejectionReason: rejectionReason,
		isConstructed:   true,
	}

	if err := errors.Join(
		proposal.setID(id),
		proposal.setOrderID(orderID),
		proposal.setForemanID(foremanID),
		proposal.setItems(items),
		proposal.setStatus(status),
		proposal.setCreatedAt(createdAt),
		proposal.setVersion(version),
	); err != nil {
		return nil, err
	}

	return proposal, nil
}

// Validate ensures the Proposal instance was properly constructed.
func (p *Proposal) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProposalIsNotConstructed
	}

	return nil
}

// IsEqual compares two proposals by their unique identifiers.
func (p *Proposal) IsEqual(other *Proposal) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the proposal's unique identifier.
func (p *Proposal) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order the estimate belongs to.
func (p *Proposal) OrderID() kernel.UUID {
	return p.orderID
}

// ForemanID returns the submitting foreman.
func (p *Proposal) ForemanID() kernel.UUID {
	return p.foremanID
}

// Items returns a copy of the ordered line items.
func (p *Proposal) Items() []LineItem {
	items := make([]LineItem, len(p.items))
	copy(items, p.items)
	return items
}

// Total returns the sum of the current line-item subtotals.
func (p *Proposal) Total() kernel.Money {
	return p.total
}

// Status returns the approval state of the proposal.
func (p *Proposal) Status() Status {
	return p.status
}

// Notes returns the foreman's free-text remarks.
func (p *Proposal) Notes() string {
	return p.notes
}

// RejectionReason returns the client's reason when the proposal is Rejected.
func (p *Proposal) RejectionReason() string {
	return p.rejectionReason
}

// CreatedAt returns when the proposal was submitted.
func (p *Proposal) CreatedAt() time.Time {
	return p.createdAt
}

// Version returns the optimistic-lock version loaded from persistence.
func (p *Proposal) Version() int {
	return p.version
}

// Approve marks the proposal as accepted by the client.
//
// Only PendingApproval proposals can be approved; anything else fails with
// InvalidTransitionError. The paired order transition (NeedValidation to
// OnProgress) is coordinated by the approval use case in one atomic unit.
func (p *Proposal) Approve() error {
	newStatus, err := p.status.Approve()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			"proposal", p.id.String(), p.status.String(), "approve", err)
	}

	p.status = newStatus
	return nil
}

// Reject marks the proposal as declined by the client, recording the reason.
// The proposal becomes immutable, but the order stays open for a fresh
// submission.
func (p *Proposal) Reject(reason string) error {
	newStatus, err := p.status.Reject()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			"proposal", p.id.String(), p.status.String(), "reject", err)
	}

	p.status = newStatus
	p.rejectionReason = reason
	return nil
}

// UpdateItems replaces the proposal's line items and recomputes the total.
//
// Permitted only while the proposal is PendingApproval; once Approved or
// Rejected the proposal is locked and this fails with ImmutableStateError.
// A failed update leaves items and total unchanged.
func (p *Proposal) UpdateItems(items []LineItem) error {
	if err := p.status.ValidateMutable(); err != nil {
		return errs.NewImmutableStateErrorWithCause(
			"proposal", p.id.String(), p.status.String(), "update items", err)
	}

	return p.setItems(items)
}

// ValidateCanRecordExpense returns nil when expenses may be recorded against
// the proposal, which requires Approved status. Otherwise it returns a
// BudgetNotApprovedError carrying the proposal's current state.
func (p *Proposal) ValidateCanRecordExpense() error {
	if p.status != Approved {
		return &BudgetNotApprovedError{
			ProposalID: p.id.String(),
			State:      p.status.String(),
		}
	}
	return nil
}

// Variance returns the signed difference between the given recorded expenses
// and the proposal total: Σ(expense totals) − total. A negative variance
// means spending is under budget. Overspend is surfaced, never blocked.
func (p *Proposal) Variance(expenses []*Expense) decimal.Decimal {
	spent := kernel.ZeroMoney()
	for _, expense := range expenses {
		spent = spent.Add(expense.Total())
	}

	return spent.Decimal().Sub(p.total.Decimal())
}

// setID validates and sets the proposal's unique identifier.
func (p *Proposal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setOrderID validates and sets the order reference.
func (p *Proposal) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

// setForemanID validates and sets the foreman reference.
func (p *Proposal) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}
	p.foremanID = foremanID
	return nil
}

// setItems validates the items, stores a copy, and recomputes the total.
func (p *Proposal) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total = total.Add(item.Subtotal())
	}

	p.items = make([]LineItem, len(items))
	copy(p.items, items)
	p.total = total
	return nil
}

// setStatus validates and sets the approval state during restoration.
func (p *Proposal) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

// setCreatedAt validates and sets the submission time during restoration.
func (p *Proposal) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}

// setVersion validates and sets the optimistic-lock version during restoration.
func (p *Proposal) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	p.version = version
	return nil
}
