// Package crewrepo provides data transfer objects and mapping functions for
// team-member persistence.
package crewrepo

import (
	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TeamMemberDTO represents the database structure for persisting team members.
type TeamMemberDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ForemanID  uuid.UUID       `gorm:"type:uuid;index"`
	Name       string          `gorm:"type:varchar(256)"`
	Specialty  string          `gorm:"type:varchar(128)"`
	Contact    string          `gorm:"type:varchar(128)"`
	Skill      int             `gorm:""`
	Experience string          `gorm:"type:text"`
	Bio        string          `gorm:"type:text"`
	Rating     decimal.Decimal `gorm:"type:numeric(3,2)"`
	Version    int             `gorm:""`
}

// TableName specifies the database table name for team members.
func (TeamMemberDTO) TableName() string {
	return "team_members"
}

// fromDomain converts a team member aggregate to its database representation.
func fromDomain(aggregate *crew.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:         aggregate.ID().Bytes(),
		ForemanID:  aggregate.ForemanID().Bytes(),
		Name:       aggregate.Name(),
		Specialty:  aggregate.Specialty().Name(),
		Contact:    aggregate.Contact(),
		Skill:      int(aggregate.Skill()),
		Experience: aggregate.Experience(),
		Bio:        aggregate.Bio(),
		Rating:     aggregate.Rating(),
		Version:    aggregate.Version(),
	}
}

// toDomain converts a database DTO to a team member aggregate using RestoreTeamMember.
func toDomain(dto TeamMemberDTO) (*crew.TeamMember, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	foremanID, err := kernel.UUIDFromBytes(dto.ForemanID[:])
	if err != nil {
		return nil, err
	}

	specialty, err := order.NewServiceCategory(dto.Specialty)
	if err != nil {
		return nil, err
	}

	return crew.RestoreTeamMember(
		id, foremanID, dto.Name, specialty, dto.Contact,
		crew.SkillLevel(dto.Skill), dto.Experience, dto.Bio, dto.Rating, dto.Version,
	)
}
