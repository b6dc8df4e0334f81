package commands

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAddressIsRequired     = errors.New("address is required")
	ErrScheduledAtIsRequired = errors.New("scheduledAt is required")
)

// CreateOrderCommand represents a client's request for maintenance work.
// Encapsulates the service category, property address, requested time and
// whether the order is gated on budget approval.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, "plumbing", "Jl. Sudirman 12", when, "leaking pipe", true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID                kernel.UUID
	clientID               kernel.UUID
	category               string
	address                string
	scheduledAt            time.Time
	notes                  string
	requiresBudgetApproval bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new maintenance order.
// Validates identifiers, the category, the address and the requested time.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	category string,
	address string,
	scheduledAt time.Time,
	notes string,
	requiresBudgetApproval bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		category:               category,
		notes:                  notes,
		requiresBudgetApproval: requiresBudgetApproval,
		guard:                  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setAddress(address),
		orderCommand.setScheduledAt(scheduledAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the identifier of the requesting client.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Category returns the requested service category name.
func (c CreateOrderCommand) Category() string {
	return c.category
}

// Address returns the property address where work happens.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// ScheduledAt returns the client's requested date/time.
func (c CreateOrderCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// Notes returns free-text instructions from the client.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// RequiresBudgetApproval reports whether work is gated on an approved proposal.
func (c CreateOrderCommand) RequiresBudgetApproval() bool {
	return c.requiresBudgetApproval
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}

	c.scheduledAt = scheduledAt
	return nil
}
