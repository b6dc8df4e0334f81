package queries

import (
	"context"
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingProposalsQueryHandler finds approvals stuck beyond a cutoff.
type GetStalePendingProposalsQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingProposalsQueryHandler creates a handler for stale proposal queries.
func NewGetStalePendingProposalsQueryHandler(db *gorm.DB) GetStalePendingProposalsQueryHandler {
	return GetStalePendingProposalsQueryHandler{db: db}
}

// Handle executes the query. Oldest proposals come first, so the most
// overdue approvals lead the escalation report.
func (h GetStalePendingProposalsQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingProposalsQuery,
) ([]GetStalePendingProposalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	proposals := make([]GetStalePendingProposalsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.order_id,
			p.foreman_id,
			o.client_id,
			o.address,
			p.total,
			p.created_at
		FROM budget_proposals p
		JOIN orders o ON o.id = p.order_id
		WHERE p.status = ? AND p.created_at < ?
		ORDER BY p.created_at
	`, budget.PendingApproval, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalePendingProposalsQueryResponse
		var proposalID, orderID, foremanID, clientID uuid.UUID

		err = rows.Scan(
			&proposalID,
			&orderID,
			&foremanID,
			&clientID,
			&resp.Address,
			&resp.Total,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ProposalID, err = kernel.UUIDFromBytes(proposalID[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.ForemanID, err = kernel.UUIDFromBytes(foremanID[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		proposals = append(proposals, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return proposals, nil
}
