package commands

import (
	"errors"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrAssignCrewCommandIsNotConstructed = errors.New(
		"AssignCrewCommand must be created via NewAssignCrewCommand constructor",
	)
	ErrWorkerIDIsInvalid = errors.New("worker id is invalid")
)

// AssignCrewCommand binds a foreman and zero or more workers to an order.
// Reassignment overwrites the prior binding.
type AssignCrewCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	foremanID kernel.UUID
	workerIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCrewCommand creates a command to bind a crew to an order.
func NewAssignCrewCommand(orderID kernel.UUID, foremanID kernel.UUID, workerIDs []kernel.UUID) (AssignCrewCommand, error) {
	cmd := AssignCrewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setForemanID(foremanID),
		cmd.setWorkerIDs(workerIDs),
	); err != nil {
		return AssignCrewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignCrewCommandIsNotConstructed)
}

// OrderID returns the order receiving the crew.
func (c AssignCrewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ForemanID returns the supervising foreman.
func (c AssignCrewCommand) ForemanID() kernel.UUID {
	return c.foremanID
}

// WorkerIDs returns the workers being bound.
func (c AssignCrewCommand) WorkerIDs() []kernel.UUID {
	return c.workerIDs
}

func (c *AssignCrewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCrewCommand) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}

	c.foremanID = foremanID
	return nil
}

func (c *AssignCrewCommand) setWorkerIDs(workerIDs []kernel.UUID) error {
	for _, workerID := range workerIDs {
		if err := workerID.Validate(); err != nil {
			return errors.Join(ErrWorkerIDIsInvalid, err)
		}
	}

	c.workerIDs = workerIDs
	return nil
}
