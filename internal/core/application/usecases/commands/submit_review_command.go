package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand records the client's one-time rating of a completed
// order. The rating range is checked by the review entity itself.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	orderID  kernel.UUID
	clientID kernel.UUID
	rating   int
	comment  string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to review a completed order.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	orderID kernel.UUID,
	clientID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		rating:  rating,
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the new review's identifier.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the completed order being reviewed.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the reviewing client.
func (c SubmitReviewCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Rating returns the 1-5 star rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitReviewCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}
