// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column implements optimistic locking; every successful update
// bumps it by one.
type OrderDTO struct {
	ID                     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ClientID               uuid.UUID        `gorm:"type:uuid;index"`
	Category               string           `gorm:"type:varchar(128)"`
	Address                string           `gorm:"type:text"`
	ScheduledAt            time.Time        `gorm:""`
	Notes                  string           `gorm:"type:text"`
	RequiresBudgetApproval bool             `gorm:""`
	Status                 int              `gorm:"index"`
	ForemanID              *uuid.UUID       `gorm:"type:uuid;index"`
	Progress               int              `gorm:""`
	Version                int              `gorm:""`
	Workers                []OrderWorkerDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderWorkerDTO represents one worker bound to an order. The rows for an
// order are replaced wholesale whenever the crew binding changes.
type OrderWorkerDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for order-worker bindings.
func (OrderWorkerDTO) TableName() string {
	return "order_workers"
}

// DocumentationDTO represents an append-only work-evidence entry.
type DocumentationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	UploaderID  uuid.UUID `gorm:"type:uuid"`
	FileRef     string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:""`
}

// TableName specifies the database table name for documentation entries.
func (DocumentationDTO) TableName() string {
	return "order_documentation"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var foremanID *uuid.UUID
	if id := aggregate.Foreman(); id != nil {
		raw := id.Bytes()
		foremanID = &raw
	}

	workers := make([]OrderWorkerDTO, 0, len(aggregate.Workers()))
	for _, workerID := range aggregate.Workers() {
		workers = append(workers, OrderWorkerDTO{
			OrderID:  aggregate.ID().Bytes(),
			WorkerID: workerID.Bytes(),
		})
	}

	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		ClientID:               aggregate.ClientID().Bytes(),
		Category:               aggregate.Category().Name(),
		Address:                aggregate.Address(),
		ScheduledAt:            aggregate.ScheduledAt(),
		Notes:                  aggregate.Notes(),
		RequiresBudgetApproval: aggregate.RequiresBudgetApproval(),
		Status:                 int(aggregate.Status()),
		ForemanID:              foremanID,
		Progress:               aggregate.Progress(),
		Version:                aggregate.Version(),
		Workers:                workers,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	category, err := order.NewServiceCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	var foremanID *kernel.UUID
	if dto.ForemanID != nil {
		fID, foremanErr := kernel.UUIDFromBytes((*dto.ForemanID)[:])
		if foremanErr != nil {
			return nil, foremanErr
		}

		foremanID = &fID
	}

	workerIDs := make([]kernel.UUID, 0, len(dto.Workers))
	for _, worker := range dto.Workers {
		workerID, workerErr := kernel.UUIDFromBytes(worker.WorkerID[:])
		if workerErr != nil {
			return nil, workerErr
		}
		workerIDs = append(workerIDs, workerID)
	}

	return order.RestoreOrder(
		id, clientID, category, dto.Address, dto.ScheduledAt, dto.Notes,
		dto.RequiresBudgetApproval, order.Status(dto.Status),
		foremanID, workerIDs, dto.Progress, dto.Version,
	)
}

// documentationFromDomain converts an evidence entry to its database representation.
func documentationFromDomain(doc *order.Documentation) DocumentationDTO {
	return DocumentationDTO{
		ID:          doc.ID().Bytes(),
		OrderID:     doc.OrderID().Bytes(),
		UploaderID:  doc.UploaderID().Bytes(),
		FileRef:     doc.FileRef(),
		Description: doc.Description(),
		CreatedAt:   doc.CreatedAt(),
	}
}
