package ports

import (
	"context"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
)

// CrewRepository defines the persistence contract for team members.
type CrewRepository interface {
	// Add persists a new team member.
	Add(ctx context.Context, aggregate *crew.TeamMember) error

	// Update persists changes to an existing team member, guarded by the
	// aggregate's version.
	Update(ctx context.Context, aggregate *crew.TeamMember) error

	// Get retrieves a team member by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*crew.TeamMember, error)

	// GetByForeman retrieves the roster owned by a foreman.
	GetByForeman(ctx context.Context, foremanID kernel.UUID) ([]*crew.TeamMember, error)
}
