// Package order contains the Order aggregate root and its supporting types.
//
// An Order tracks a client's property-maintenance request through its
// lifecycle: NeedValidation on creation, OnProgress once work is cleared to
// start (by budget approval or an explicit start for un-gated orders), Done
// when fieldwork reaches 100%, and Cancelled as the terminal escape hatch
// from either non-terminal state.
//
// The package includes:
//   - Order: the aggregate root holding status, crew binding, and progress
//   - Status: the lifecycle state machine with validated transitions
//   - ServiceCategory: the validated name of the requested kind of work
//   - Documentation: append-only evidence entries recorded during execution
//
// All invariants (monotonic status and progress, terminal states, crew
// binding rules) are enforced inside the aggregate; callers interact only
// through intention-revealing methods.
package order
