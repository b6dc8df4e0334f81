package queries

import (
	"context"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetForemanOrdersQueryHandler reads a foreman's assigned orders.
// Terminal orders stay in the result so the foreman can still see recently
// finished and cancelled work; callers filter by Status if they need less.
type GetForemanOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetForemanOrdersQueryHandler creates a handler for foreman queue queries.
func NewGetForemanOrdersQueryHandler(db *gorm.DB) GetForemanOrdersQueryHandler {
	return GetForemanOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders are sorted by scheduled date, soonest
// first. An unknown foreman yields an empty slice, not an error.
func (h GetForemanOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetForemanOrdersQuery,
) ([]GetForemanOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetForemanOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category,
			address,
			scheduled_at,
			requires_budget_approval,
			status,
			progress
		FROM orders
		WHERE foreman_id = ?
		ORDER BY scheduled_at
	`, query.ForemanID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetForemanOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.Category,
			&resp.Address,
			&resp.ScheduledAt,
			&resp.RequiresBudgetApproval,
			&status,
			&resp.Progress,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
