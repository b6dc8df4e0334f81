package order

import (
	"errors"
	"time"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a client's property-maintenance request. It is the
// aggregate root that manages the order lifecycle from creation through
// crew assignment, budget approval, execution and closure.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and client reference
//   - Must have a valid service category and non-empty address
//   - Status transitions are monotonic; Done and Cancelled are terminal
//   - Progress is monotonic within [0,100]; reaching 100 completes the order
//   - When requiresBudgetApproval is set, the order leaves NeedValidation
//     only through budget-proposal approval
//   - Can only be created through NewOrder / RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID references the client who placed the order
	clientID kernel.UUID

	// category is the kind of work requested
	category ServiceCategory

	// address is the property location where work happens
	address string

	// scheduledAt is the client's requested date/time
	scheduledAt time.Time

	// notes carries free-text instructions from the client
	notes string

	// requiresBudgetApproval gates the start of work on an approved proposal
	requiresBudgetApproval bool

	// status represents the current state in the order lifecycle
	status Status

	// foremanID is the assigned supervisor (nil if unassigned)
	foremanID *kernel.UUID

	// workerIDs are the assigned crew members (empty if unassigned)
	workerIDs []kernel.UUID

	// progress is the completion percentage of fieldwork, 0..100
	progress int

	// version is the optimistic-lock counter maintained by persistence
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a valid Order for a fresh request, ensuring all business
// invariants hold. The order starts in NeedValidation with zero progress
// and no crew assigned.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - clientID: The requesting client (must be valid UUID)
//   - category: Service category of the requested work
//   - address: Property address (must not be empty)
//   - scheduledAt: Requested date/time (must not be zero)
//   - notes: Free-text instructions (may be empty)
//   - requiresBudgetApproval: Whether work may only start after an approved proposal
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	category ServiceCategory,
	address string,
	scheduledAt time.Time,
	notes string,
	requiresBudgetApproval bool,
) (*Order, error) {
	order := &Order{
		status:                 NeedValidation,
		notes:                  notes,
		requiresBudgetApproval: requiresBudgetApproval,
		version:                1,
		isConstructed:          true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setCategory(category),
		order.setAddress(address),
		order.setScheduledAt(scheduledAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// lifecycle state, crew binding, progress and optimistic-lock version. The
// restored order behaves identically to one built through normal domain
// operations.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	category ServiceCategory,
	address string,
	scheduledAt time.Time,
	notes string,
	requiresBudgetApproval bool,
	status Status,
	foremanID *kernel.UUID,
	workerIDs []kernel.UUID,
	progress int,
	version int,
) (*Order, error) {
	order := &Order{
		notes:                  notes,
		requiresBudgetApproval: requiresBudgetApproval,
		isConstructed:          true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setCategory(category),
		order.setAddress(address),
		order.setScheduledAt(scheduledAt),
		order.setStatus(status),
		order.setCrew(foremanID, workerIDs),
		order.setProgress(progress),
		order.setVersion(version),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. This method should be called
// when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who placed the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Category returns the service category of the requested work.
func (o *Order) Category() ServiceCategory {
	return o.category
}

// Address returns the property address.
func (o *Order) Address() string {
	return o.address
}

// ScheduledAt returns the client's requested date/time.
func (o *Order) ScheduledAt() time.Time {
	return o.scheduledAt
}

// Notes returns the client's free-text instructions.
func (o *Order) Notes() string {
	return o.notes
}

// RequiresBudgetApproval reports whether work may only start after a budget
// proposal for the order has been approved.
func (o *Order) RequiresBudgetApproval() bool {
	return o.requiresBudgetApproval
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Foreman returns the assigned foreman's ID, or nil if no crew is bound.
func (o *Order) Foreman() *kernel.UUID {
	return o.foremanID
}

// Workers returns a copy of the assigned worker IDs.
func (o *Order) Workers() []kernel.UUID {
	workers := make([]kernel.UUID, len(o.workerIDs))
	copy(workers, o.workerIDs)
	return workers
}

// Progress returns the completion percentage of fieldwork, 0..100.
func (o *Order) Progress() int {
	return o.progress
}

// Version returns the optimistic-lock version loaded from persistence.
func (o *Order) Version() int {
	return o.version
}

// Start moves the order from NeedValidation to OnProgress.
//
// This transition fires when a budget proposal is approved, or when an
// order that carries no budget gate is started explicitly. The budget gate
// itself (refusing an explicit start while requiresBudgetApproval is set)
// is enforced by the lifecycle use cases, which know which path they are on.
//
// Returns an InvalidTransitionError when the order is not in NeedValidation.
func (o *Order) Start() error {
	newStatus, err := o.status.Start()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("order", o.id.String(), o.status.String(), "start", err)
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to the terminal Cancelled status.
//
// Cancellation is allowed only from NeedValidation or OnProgress; a Done or
// already-Cancelled order fails with InvalidTransitionError.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("order", o.id.String(), o.status.String(), "cancel", err)
	}

	o.status = newStatus
	return nil
}

// AssignCrew binds a foreman and zero-or-more workers to the order,
// overwriting any prior binding. Assignment history is not kept.
//
// Assignment is allowed in any non-terminal status. Specialty matching is
// advisory and handled by the assignment advisor domain service; a mismatch
// never blocks assignment here.
//
// Returns an InvalidTransitionError when the order is Done or Cancelled,
// or a validation error when any identifier is invalid.
func (o *Order) AssignCrew(foremanID kernel.UUID, workerIDs []kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionError("order", o.id.String(), o.status.String(), "assign crew")
	}

	if err := foremanID.Validate(); err != nil {
		return err
	}
	for _, workerID := range workerIDs {
		if err := workerID.Validate(); err != nil {
			return err
		}
	}

	o.foremanID = &foremanID
	o.workerIDs = make([]kernel.UUID, len(workerIDs))
	copy(o.workerIDs, workerIDs)
	return nil
}

// AdvanceProgress records a new completion percentage for the order.
//
// Business rules:
//   - The order must be OnProgress
//   - percent must lie within [0,100]
//   - percent must not be lower than the stored progress (monotonic)
//   - percent == 100 completes the order: status becomes Done in the same step
//
// A failed update leaves both progress and status unchanged.
func (o *Order) AdvanceProgress(percent int) error {
	if o.status != OnProgress {
		return errs.NewInvalidTransitionError("order", o.id.String(), o.status.String(), "update progress")
	}

	if percent < 0 || percent > 100 {
		return errs.NewValueIsOutOfRangeError("progress", percent, 0, 100)
	}

	if percent < o.progress {
		return errs.NewValueIsOutOfRangeError("progress", percent, o.progress, 100)
	}

	if percent == 100 {
		newStatus, err := o.status.Complete()
		if err != nil {
			return errs.NewInvalidTransitionErrorWithCause(
				"order", o.id.String(), o.status.String(), "update progress", err)
		}
		o.status = newStatus
	}

	o.progress = percent
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the client reference.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setCategory validates and sets the service category.
func (o *Order) setCategory(category ServiceCategory) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

// setAddress validates and sets the property address.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

// setScheduledAt validates and sets the requested date/time.
func (o *Order) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	o.scheduledAt = scheduledAt
	return nil
}

// setStatus validates and sets the lifecycle status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCrew validates and sets the crew binding during restoration.
func (o *Order) setCrew(foremanID *kernel.UUID, workerIDs []kernel.UUID) error {
	if foremanID == nil {
		if len(workerIDs) > 0 {
			return errs.NewValueIsInvalidError("workers cannot be assigned without a foreman")
		}
		return nil
	}

	if err := foremanID.Validate(); err != nil {
		return err
	}
	for _, workerID := range workerIDs {
		if err := workerID.Validate(); err != nil {
			return err
		}
	}

	o.foremanID = foremanID
	o.workerIDs = make([]kernel.UUID, len(workerIDs))
	copy(o.workerIDs, workerIDs)
	return nil
}

// setProgress validates and sets the completion percentage during restoration.
func (o *Order) setProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return errs.NewValueIsOutOfRangeError("progress", progress, 0, 100)
	}
	o.progress = progress
	return nil
}

// setVersion validates and sets the optimistic-lock version during restoration.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	o.version = version
	return nil
}
