package queries

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/guard"
)

var ErrGetForemanOrdersQueryIsNotConstructed = errors.New(
	"GetForemanOrdersQuery must be created via NewGetForemanOrdersQuery constructor",
)

// GetForemanOrdersQuery retrieves the work queue of one foreman: every
// order the foreman is currently bound to, soonest schedule first.
type GetForemanOrdersQuery struct {
	foremanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetForemanOrdersQuery creates a query for a foreman's assigned orders.
func NewGetForemanOrdersQuery(foremanID kernel.UUID) (GetForemanOrdersQuery, error) {
	if err := foremanID.Validate(); err != nil {
		return GetForemanOrdersQuery{}, err
	}

	return GetForemanOrdersQuery{
		foremanID: foremanID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetForemanOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetForemanOrdersQueryIsNotConstructed)
}

// ForemanID returns the foreman whose queue is being read.
func (q GetForemanOrdersQuery) ForemanID() kernel.UUID {
	return q.foremanID
}

// GetForemanOrdersQueryResponse is one order in the foreman's work queue.
type GetForemanOrdersQueryResponse struct {
	ID                     kernel.UUID
	Category               string
	Address                string
	ScheduledAt            time.Time
	RequiresBudgetApproval bool
	Status                 order.Status
	Progress               int
}
