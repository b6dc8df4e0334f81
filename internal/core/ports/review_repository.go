package ports

import (
	"context"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for client reviews.
// Reviews are write-once; there is no Update.
type ReviewRepository interface {
	// Add persists a new review. A second review for the same order fails
	// with review.ErrDuplicateReview.
	Add(ctx context.Context, aggregate *review.Review) error

	// GetByOrder retrieves the review written for an order.
	// Returns ObjectNotFoundError when the order has no review yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*review.Review, error)
}
