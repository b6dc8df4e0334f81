package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads the composed order view with raw SQL.
// The view joins five tables; each section is fetched with its own query
// rather than one wide join, so absent sections stay nil instead of
// producing row explosions.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order
// does not exist; missing proposal or review are not errors.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	if resp.WorkerIDs, err = h.fetchWorkers(ctx, query.OrderID()); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	if resp.Proposal, err = h.fetchActiveProposal(ctx, query.OrderID()); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	if resp.Documentation, err = h.fetchDocumentation(ctx, query.OrderID()); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	if resp.Review, err = h.fetchReview(ctx, query.OrderID()); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderDetailQueryHandler) fetchOrder(ctx context.Context, orderID kernel.UUID) (GetOrderDetailQueryResponse, error) {
	var resp GetOrderDetailQueryResponse
	var id, clientID uuid.UUID
	var foremanID uuid.NullUUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			category,
			address,
			scheduled_at,
			notes,
			requires_budget_approval,
			status,
			foreman_id,
			progress
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&clientID,
		&resp.Category,
		&resp.Address,
		&resp.ScheduledAt,
		&resp.Notes,
		&resp.RequiresBudgetApproval,
		&status,
		&foremanID,
		&resp.Progress,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return resp, errs.NewObjectNotFoundErrorWithCause("order", orderID.String(), err)
	}
	if err != nil {
		return resp, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return resp, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return resp, err
	}
	if foremanID.Valid {
		foreman, idErr := kernel.UUIDFromBytes(foremanID.UUID[:])
		if idErr != nil {
			return resp, idErr
		}
		resp.ForemanID = &foreman
	}
	resp.Status = order.Status(status)

	return resp, nil
}

func (h GetOrderDetailQueryHandler) fetchWorkers(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT worker_id
		FROM order_workers
		WHERE order_id = ?
		ORDER BY worker_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []kernel.UUID
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		workers = append(workers, workerID)
	}

	return workers, rows.Err()
}

func (h GetOrderDetailQueryHandler) fetchActiveProposal(ctx context.Context, orderID kernel.UUID) (*ProposalDetail, error) {
	var detail ProposalDetail
	var id, foremanID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			foreman_id,
			total,
			status,
			notes,
			rejection_reason,
			created_at
		FROM budget_proposals
		WHERE order_id = ? AND status <> ?
	`, orderID.Bytes(), budget.Rejected).Row()

	err := row.Scan(
		&id,
		&foremanID,
		&detail.Total,
		&status,
		&detail.Notes,
		&detail.RejectionReason,
		&detail.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if detail.ForemanID, err = kernel.UUIDFromBytes(foremanID[:]); err != nil {
		return nil, err
	}
	detail.Status = budget.Status(status)

	if detail.Items, err = h.fetchItems(ctx, detail.ID); err != nil {
		return nil, err
	}
	if detail.Expenses, err = h.fetchExpenses(ctx, detail.ID); err != nil {
		return nil, err
	}

	detail.SpentTotal = decimal.Zero
	for _, expense := range detail.Expenses {
		detail.SpentTotal = detail.SpentTotal.Add(expense.Total)
	}
	detail.Variance = detail.SpentTotal.Sub(detail.Total)

	return &detail, nil
}

func (h GetOrderDetailQueryHandler) fetchItems(ctx context.Context, proposalID kernel.UUID) ([]ProposalItemDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, quantity, unit_price
		FROM proposal_items
		WHERE proposal_id = ?
		ORDER BY position
	`, proposalID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ProposalItemDetail
	for rows.Next() {
		var item ProposalItemDetail
		if err = rows.Scan(&item.Name, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderDetailQueryHandler) fetchExpenses(ctx context.Context, proposalID kernel.UUID) ([]ExpenseDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, item_name, quantity, unit_price, purchased_at, proof_ref
		FROM proposal_expenses
		WHERE proposal_id = ?
		ORDER BY purchased_at
	`, proposalID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []ExpenseDetail
	for rows.Next() {
		var expense ExpenseDetail
		var id uuid.UUID
		err = rows.Scan(
			&id,
			&expense.ItemName,
			&expense.Quantity,
			&expense.UnitPrice,
			&expense.PurchasedAt,
			&expense.ProofRef,
		)
		if err != nil {
			return nil, err
		}

		if expense.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		expense.Total = expense.UnitPrice.Mul(decimal.NewFromInt(int64(expense.Quantity)))
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}

func (h GetOrderDetailQueryHandler) fetchDocumentation(ctx context.Context, orderID kernel.UUID) ([]DocumentationDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, uploader_id, file_ref, description, created_at
		FROM order_documentation
		WHERE order_id = ?
		ORDER BY created_at DESC
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []DocumentationDetail
	for rows.Next() {
		var entry DocumentationDetail
		var id, uploaderID uuid.UUID
		err = rows.Scan(&id, &uploaderID, &entry.FileRef, &entry.Description, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.UploaderID, err = kernel.UUIDFromBytes(uploaderID[:]); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (h GetOrderDetailQueryHandler) fetchReview(ctx context.Context, orderID kernel.UUID) (*ReviewDetail, error) {
	var detail ReviewDetail
	var id, clientID uuid.UUID
	var createdAt time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, client_id, rating, comment, created_at
		FROM reviews
		WHERE order_id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&id, &clientID, &detail.Rating, &detail.Comment, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if detail.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return nil, err
	}
	detail.CreatedAt = createdAt

	return &detail, nil
}
