package review

import (
	"errors"
	"fmt"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

const (
	minRating = 1
	maxRating = 5
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not
	// created through the NewReview factory method.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
	// ErrDuplicateReview is returned when an order already has a review.
	// Each completed order accepts exactly one review.
	ErrDuplicateReview = errors.New("order already has a review")
)

// Review is a client's one-time verdict on a completed order. Reviews are
// immutable once written; a second review for the same order fails with
// ErrDuplicateReview at the storage boundary.
type Review struct {
	id        kernel.UUID
	orderID   kernel.UUID
	clientID  kernel.UUID
	rating    int
	comment   string
	createdAt time.Time

	isConstructed bool
}

// NewReview creates a review stamped with the current UTC time.
// The rating must lie within [1, 5].
func NewReview(id kernel.UUID, orderID kernel.UUID, clientID kernel.UUID, rating int, comment string) (*Review, error) {
	return RestoreReview(id, orderID, clientID, rating, comment, time.Now().UTC())
}

// RestoreReview reconstructs a Review from persistent storage.
func RestoreReview(
	id kernel.UUID,
	orderID kernel.UUID,
	clientID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	review := &Review{
		isConstructed: true,
		comment:       comment,
	}

	if err := errors.Join(
		review.setID(id),
		review.setOrderID(orderID),
		review.setClientID(clientID),
		review.setRating(rating),
		review.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks that the review was properly constructed.
func (r *Review) Validate() error {
	if !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// IsEqual compares two reviews by identity.
func (r *Review) IsEqual(other *Review) bool {
	return r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order's identifier.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// ClientID returns the author's identifier.
func (r *Review) ClientID() kernel.UUID {
	return r.clientID
}

// Rating returns the star rating, 1 to 5.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was written.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	r.id = id
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	r.clientID = clientID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause(
			"createdAt",
			fmt.Errorf("zero time is not a valid creation time"),
		)
	}
	r.createdAt = createdAt
	return nil
}
