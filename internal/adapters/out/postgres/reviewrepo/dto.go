// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. The unique index on order_id backs the one-review-per-
// order rule.
package reviewrepo

import (
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting client reviews.
type ReviewDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ClientID  uuid.UUID `gorm:"type:uuid;index"`
	Rating    int       `gorm:""`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:""`
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		ClientID:  aggregate.ClientID().Bytes(),
		Rating:    aggregate.Rating(),
		Comment:   aggregate.Comment(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a review using RestoreReview.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, orderID, clientID, dto.Rating, dto.Comment, dto.CreatedAt)
}
