// Package budget contains the budget-proposal (RAB) aggregate and its
// supporting types.
//
// A Proposal is an itemized cost estimate a foreman submits for client
// approval. Its line items stay editable while the proposal is
// PendingApproval; approval or rejection locks them for good. The cached
// total is recomputed on every item mutation, so it always equals the sum
// of the current subtotals.
//
// Expenses are actual expenditures recorded against an approved proposal.
// The signed difference between recorded expenses and the proposal total is
// surfaced as variance for reporting; overspend is visible, never blocked.
package budget
