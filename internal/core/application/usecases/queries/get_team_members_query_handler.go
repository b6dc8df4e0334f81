package queries

import (
	"context"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTeamMembersQueryHandler reads a foreman's roster from the database.
type GetTeamMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetTeamMembersQueryHandler creates a handler for roster queries.
func NewGetTeamMembersQueryHandler(db *gorm.DB) GetTeamMembersQueryHandler {
	return GetTeamMembersQueryHandler{db: db}
}

// Handle executes the query. Members are sorted by name.
func (h GetTeamMembersQueryHandler) Handle(
	ctx context.Context,
	query GetTeamMembersQuery,
) ([]GetTeamMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetTeamMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			specialty,
			contact,
			skill,
			experience,
			bio,
			rating
		FROM team_members
		WHERE foreman_id = ?
		ORDER BY name
	`, query.ForemanID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var member GetTeamMembersQueryResponse
		var id uuid.UUID
		var skill int

		err = rows.Scan(
			&id,
			&member.Name,
			&member.Specialty,
			&member.Contact,
			&skill,
			&member.Experience,
			&member.Bio,
			&member.Rating,
		)
		if err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		member.ID = memberID
		member.Skill = crew.SkillLevel(skill)
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
