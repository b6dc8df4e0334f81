// Package crew contains the team-member aggregate for a foreman's worker
// roster.
//
// A TeamMember carries the worker's profile: specialty, contact details,
// skill level and accumulated rating. The specialty feeds the assignment
// advisor, which warns about category mismatches when crews are bound to
// orders without ever blocking the assignment.
package crew
