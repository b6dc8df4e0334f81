package orderrepo

import (
	"context"
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The write is guarded by the
// version the aggregate was loaded with; when another writer got there first,
// zero rows match and the update fails with ConcurrencyConflictError.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Updates(map[string]any{
			"client_id":                dto.ClientID,
			"category":                 dto.Category,
			"address":                  dto.Address,
			"scheduled_at":             dto.ScheduledAt,
			"notes":                    dto.Notes,
			"requires_budget_approval": dto.RequiresBudgetApproval,
			"status":                   dto.Status,
			"foreman_id":               dto.ForemanID,
			"progress":                 dto.Progress,
			"version":                  aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	if err := r.replaceWorkers(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its crew binding.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Workers").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddDocumentation appends an evidence entry. Entries are never updated.
func (r *GormOrderRepository) AddDocumentation(ctx context.Context, doc *order.Documentation) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := documentationFromDomain(doc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(doc.ID(), doc)
	return nil
}

func (r *GormOrderRepository) replaceWorkers(ctx context.Context, dto OrderDTO) error {
	if err := r.db.WithContext(ctx).
		Delete(&OrderWorkerDTO{}, "order_id = ?", dto.ID).Error; err != nil {
		return err
	}

	if len(dto.Workers) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Workers).Error
}
