package budget

import (
	"fmt"

	"bizza/internal/pkg/errs"
)

// Status represents the approval state of a budget proposal.
//
// State transitions:
//
//	PendingApproval ──┬──> Approved
//	                  └──> Rejected
//
// Approved and Rejected are final: a locked proposal is never edited again.
// A Rejected proposal permits the foreman to submit a fresh proposal for the
// same order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingApproval is the initial status of a submitted proposal.
	// Only pending proposals may have their line items edited.
	PendingApproval

	// Approved indicates the client accepted the cost estimate.
	// Expenses may only be recorded against approved proposals.
	Approved

	// Rejected indicates the client declined the cost estimate.
	// The proposal is locked, but a new one may be submitted.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		PendingApproval: "PendingApproval",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingApproval: "PendingApproval",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: PendingApproval, Approved, Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the stored code of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the proposal is locked against further changes.
func (s Status) IsFinal() bool {
	return s == Approved || s == Rejected
}

// ValidateMutable returns an error unless line items may still be edited,
// which is only the case while the proposal is PendingApproval.
func (s Status) ValidateMutable() error {
	if s != PendingApproval {
		return fmt.Errorf("%s is not a valid status to edit", s.String())
	}
	return nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - PendingApproval -> Approved
//
// Returns:
//   - (Approved, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Approve() (Status, error) {
	if s != PendingApproval {
		return 0, fmt.Errorf("%s is not a valid status to approve", s.String())
	}

	return Approved, nil
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - PendingApproval -> Rejected
//
// Returns:
//   - (Rejected, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Reject() (Status, error) {
	if s != PendingApproval {
		return 0, fmt.Errorf("%s is not a valid status to reject", s.String())
	}

	return Rejected, nil
}
