package order

import (
	"fmt"

	"bizza/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	NeedValidation ──> OnProgress ──> Done
//	       │                │
//	       └──> Cancelled <─┘
//
// Done and Cancelled are terminal; no transition leaves them.
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// NeedValidation is the initial status when an order is first created.
	// Orders in this status are waiting for crew assignment and, when
	// required, budget-proposal approval.
	NeedValidation

	// OnProgress indicates fieldwork on the order has started.
	// Progress updates and expense recording happen in this status.
	OnProgress

	// Done indicates the order reached 100% completion.
	// This is a terminal state; only a client review may follow.
	Done

	// Cancelled indicates the order was explicitly cancelled before
	// completion. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		NeedValidation: "NeedValidation",
		OnProgress:     "OnProgress",
		Done:           "Done",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NeedValidation: "NeedValidation",
		OnProgress:     "OnProgress",
		Done:           "Done",
		Cancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: NeedValidation, OnProgress, Done, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored code of the status. Human-readable labels are a
// presentation concern and live at the HTTP boundary, not here.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Done and Cancelled are both terminal.
func (s Status) IsTerminal() bool {
	return s == Done || s == Cancelled
}

// Start transitions the status to OnProgress.
//
// Valid transitions:
//   - NeedValidation -> OnProgress
//
// Returns:
//   - (OnProgress, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This transition fires either when a budget proposal for the order is
// approved or when an order that needs no budget gate is started explicitly.
func (s Status) Start() (Status, error) {
	if s != NeedValidation {
		return 0, fmt.Errorf("%s is not a valid status to start", s.String())
	}

	return OnProgress, nil
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - OnProgress -> Done (progress reached 100%)
//
// Returns:
//   - (Done, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != OnProgress {
		return 0, fmt.Errorf("%s is not a valid status to complete", s.String())
	}

	return Done, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - NeedValidation -> Cancelled
//   - OnProgress -> Cancelled
//
// Terminal statuses (Done, Cancelled) cannot be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != NeedValidation && s != OnProgress {
		return 0, fmt.Errorf("%s is not a valid status to cancel", s.String())
	}

	return Cancelled, nil
}
