package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle and concurrency failures.
var (
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrImmutableState      = errors.New("state is immutable")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// InvalidTransitionError indicates that an operation is not legal from the
// entity's current lifecycle state. It always carries the entity kind, its
// identifier, the state observed, and the operation attempted so the caller
// can decide on recovery.
type InvalidTransitionError struct {
	Entity    string
	ID        any
	State     string
	Operation string
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// entity, identifier, observed state and attempted operation.
func NewInvalidTransitionError(entity string, id any, state, operation string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, ID: id, State: state, Operation: operation}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping an underlying cause.
func NewInvalidTransitionErrorWithCause(
	entity string,
	id any,
	state, operation string,
	cause error,
) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, ID: id, State: state, Operation: operation, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s, state is: %s, operation is: %s (cause: %s)",
			ErrInvalidTransition, e.Entity, e.ID, e.State, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s, state is: %s, operation is: %s",
		ErrInvalidTransition, e.Entity, e.ID, e.State, e.Operation))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ImmutableStateError indicates an attempt to mutate an entity that has
// reached a locked state (for example editing the line items of a proposal
// that was already approved or rejected).
type ImmutableStateError struct {
	Entity    string
	ID        any
	State     string
	Operation string
	Cause     error
}

// NewImmutableStateError creates an ImmutableStateError for the given entity,
// identifier, locked state and attempted operation.
func NewImmutableStateError(entity string, id any, state, operation string) *ImmutableStateError {
	return &ImmutableStateError{Entity: entity, ID: id, State: state, Operation: operation}
}

// NewImmutableStateErrorWithCause creates an ImmutableStateError wrapping an underlying cause.
func NewImmutableStateErrorWithCause(
	entity string,
	id any,
	state, operation string,
	cause error,
) *ImmutableStateError {
	return &ImmutableStateError{Entity: entity, ID: id, State: state, Operation: operation, Cause: cause}
}

func (e *ImmutableStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s, state is: %s, operation is: %s (cause: %s)",
			ErrImmutableState, e.Entity, e.ID, e.State, e.Operation, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s, state is: %s, operation is: %s",
		ErrImmutableState, e.Entity, e.ID, e.State, e.Operation))
}

func (e *ImmutableStateError) Unwrap() error {
	return ErrImmutableState
}

// ConcurrencyConflictError indicates that a write lost an optimistic-lock
// race: the aggregate version read at the start of the operation no longer
// matches the stored one. Command handlers retry this error a bounded number
// of times against freshly re-read state before surfacing it.
type ConcurrencyConflictError struct {
	Entity string
	ID     any
	Cause  error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the given entity and identifier.
func NewConcurrencyConflictError(entity string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Entity: entity, ID: id}
}

// NewConcurrencyConflictErrorWithCause creates a ConcurrencyConflictError wrapping an underlying cause.
func NewConcurrencyConflictErrorWithCause(entity string, id any, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Entity: entity, ID: id, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s (cause: %s)",
			ErrConcurrencyConflict, e.Entity, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: entity is: %s, ID is: %s", ErrConcurrencyConflict, e.Entity, e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
