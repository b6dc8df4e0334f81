// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the maintenance system. It implements logic
// that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AssignmentAdvisor: A domain service that checks worker specialties
//     against an order's service category and surfaces mismatch warnings
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
