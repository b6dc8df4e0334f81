package queries

import (
	"errors"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTeamMembersQueryIsNotConstructed = errors.New(
	"GetTeamMembersQuery must be created via NewGetTeamMembersQuery constructor",
)

// GetTeamMembersQuery retrieves the stored roster of one foreman.
type GetTeamMembersQuery struct {
	foremanID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTeamMembersQuery creates a query for a foreman's roster.
func NewGetTeamMembersQuery(foremanID kernel.UUID) (GetTeamMembersQuery, error) {
	if err := foremanID.Validate(); err != nil {
		return GetTeamMembersQuery{}, err
	}

	return GetTeamMembersQuery{
		foremanID: foremanID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTeamMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetTeamMembersQueryIsNotConstructed)
}

// ForemanID returns the foreman whose roster is being read.
func (q GetTeamMembersQuery) ForemanID() kernel.UUID {
	return q.foremanID
}

// GetTeamMembersQueryResponse is one roster member's profile.
type GetTeamMembersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Specialty  string
	Contact    string
	Skill      crew.SkillLevel
	Experience string
	Bio        string
	Rating     decimal.Decimal
}
