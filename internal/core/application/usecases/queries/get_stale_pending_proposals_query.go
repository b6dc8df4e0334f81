package queries

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
	"bizza/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetStalePendingProposalsQueryIsNotConstructed = errors.New(
	"GetStalePendingProposalsQuery must be created via NewGetStalePendingProposalsQuery constructor",
)

// GetStalePendingProposalsQuery retrieves proposals that have been sitting
// in PendingApproval for longer than the given age. The escalation job uses
// it to surface stuck approvals.
type GetStalePendingProposalsQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingProposalsQuery creates a query for stuck approvals.
func NewGetStalePendingProposalsQuery(olderThan time.Duration) (GetStalePendingProposalsQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingProposalsQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStalePendingProposalsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePendingProposalsQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingProposalsQueryIsNotConstructed)
}

// OlderThan returns the minimum pending age.
func (q GetStalePendingProposalsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStalePendingProposalsQueryResponse is one stuck proposal with enough
// order context to write a useful escalation entry.
type GetStalePendingProposalsQueryResponse struct {
	ProposalID kernel.UUID
	OrderID    kernel.UUID
	ForemanID  kernel.UUID
	ClientID   kernel.UUID
	Address    string
	Total      decimal.Decimal
	CreatedAt  time.Time
}
