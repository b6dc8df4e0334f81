package commands

import (
	"errors"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/guard"
)

var (
	ErrRegisterTeamMemberCommandIsNotConstructed = errors.New(
		"RegisterTeamMemberCommand must be created via NewRegisterTeamMemberCommand constructor",
	)
	ErrMemberNameIsRequired    = errors.New("member name is required")
	ErrMemberContactIsRequired = errors.New("member contact is required")
)

// RegisterTeamMemberCommand adds a worker to a foreman's roster.
type RegisterTeamMemberCommand struct { //nolint:recvcheck //using for validation
	memberID   kernel.UUID
	foremanID  kernel.UUID
	name       string
	specialty  string
	contact    string
	skill      crew.SkillLevel
	experience string
	bio        string

	guard guard.ConstructorGuard
}

// NewRegisterTeamMemberCommand creates a command to register a team member.
func NewRegisterTeamMemberCommand(
	memberID kernel.UUID,
	foremanID kernel.UUID,
	name string,
	specialty string,
	contact string,
	skill crew.SkillLevel,
	experience string,
	bio string,
) (RegisterTeamMemberCommand, error) {
	cmd := RegisterTeamMemberCommand{
		specialty:  specialty,
		experience: experience,
		bio:        bio,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setForemanID(foremanID),
		cmd.setName(name),
		cmd.setContact(contact),
		cmd.setSkill(skill),
	); err != nil {
		return RegisterTeamMemberCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterTeamMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTeamMemberCommandIsNotConstructed)
}

// MemberID returns the new member's identifier.
func (c RegisterTeamMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

// ForemanID returns the owning foreman.
func (c RegisterTeamMemberCommand) ForemanID() kernel.UUID {
	return c.foremanID
}

// Name returns the member's display name.
func (c RegisterTeamMemberCommand) Name() string {
	return c.name
}

// Specialty returns the member's trained service category name.
func (c RegisterTeamMemberCommand) Specialty() string {
	return c.specialty
}

// Contact returns the member's contact address.
func (c RegisterTeamMemberCommand) Contact() string {
	return c.contact
}

// Skill returns the member's proficiency level.
func (c RegisterTeamMemberCommand) Skill() crew.SkillLevel {
	return c.skill
}

// Experience returns the free-text experience summary.
func (c RegisterTeamMemberCommand) Experience() string {
	return c.experience
}

// Bio returns the member's self-description.
func (c RegisterTeamMemberCommand) Bio() string {
	return c.bio
}

func (c *RegisterTeamMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	c.memberID = memberID
	return nil
}

func (c *RegisterTeamMemberCommand) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return err
	}

	c.foremanID = foremanID
	return nil
}

func (c *RegisterTeamMemberCommand) setName(name string) error {
	if name == "" {
		return ErrMemberNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTeamMemberCommand) setContact(contact string) error {
	if contact == "" {
		return ErrMemberContactIsRequired
	}

	c.contact = contact
	return nil
}

func (c *RegisterTeamMemberCommand) setSkill(skill crew.SkillLevel) error {
	if err := skill.Validate(); err != nil {
		return err
	}

	c.skill = skill
	return nil
}
