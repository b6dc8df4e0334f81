package ports

import (
	"context"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their documentation entries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// aggregate's version. A stale version fails with ConcurrencyConflictError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AddDocumentation appends a documentation entry to an order.
	// Entries are append-only and never updated.
	AddDocumentation(ctx context.Context, doc *order.Documentation) error
}
