package crew

import (
	"errors"
	"fmt"

	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"
	"bizza/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrTeamMemberIsNotConstructed is returned when a TeamMember instance was not
	// created through the NewTeamMember factory method.
	ErrTeamMemberIsNotConstructed = errors.New("TeamMember must be created via NewTeamMember constructor")
)

// maxRating bounds a member's rating; the scale runs from 0 to 5 inclusive.
var maxRating = decimal.NewFromInt(5)

// TeamMember represents a worker on a foreman's roster. It is an aggregate
// root keyed by its own identifier and owned by a foreman.
//
// A member's specialty names the service category they are best at. Orders
// outside the specialty may still be assigned to them; the mismatch is
// surfaced as a warning by the assignment advisor, never as an error.
type TeamMember struct {
	// id is the unique identifier for the team member
	id kernel.UUID

	// foremanID references the foreman who owns this roster entry
	foremanID kernel.UUID

	// name is the member's display name
	name string

	// specialty is the service category the member is trained for
	specialty order.ServiceCategory

	// contact is a phone number or other reachable address
	contact string

	// skill classifies the member's proficiency
	skill SkillLevel

	// experience is a free-text summary of prior work
	experience string

	// bio is an optional self-description
	bio string

	// rating is the accumulated client rating, 0 to 5
	rating decimal.Decimal

	// version supports optimistic locking in storage
	version int

	// isConstructed ensures the member was created via a constructor
	isConstructed bool
}

// NewTeamMember creates a roster entry for a foreman's worker.
// New members start with a zero rating and version 1.
func NewTeamMember(
	id kernel.UUID,
	foremanID kernel.UUID,
	name string,
	specialty order.ServiceCategory,
	contact string,
	skill SkillLevel,
	experience string,
	bio string,
) (*TeamMember, error) {
	return RestoreTeamMember(id, foremanID, name, specialty, contact, skill, experience, bio, decimal.Zero, 1)
}

// RestoreTeamMember reconstructs a TeamMember from persistent storage.
func RestoreTeamMember(
	id kernel.UUID,
	foremanID kernel.UUID,
	name string,
	specialty order.ServiceCategory,
	contact string,
	skill SkillLevel,
	experience string,
	bio string,
	rating decimal.Decimal,
	version int,
) (*TeamMember, error) {
	member := &TeamMember{
		isConstructed: true,
		experience:    experience,
		bio:           bio,
	}

	if err := errors.Join(
		member.setID(id),
		member.setForemanID(foremanID),
		member.setName(name),
		member.setSpecialty(specialty),
		member.setContact(contact),
		member.setSkill(skill),
		member.setRating(rating),
		member.setVersion(version),
	); err != nil {
		return nil, err
	}

	return member, nil
}

// Validate checks that the member was properly constructed.
func (m *TeamMember) Validate() error {
	if !m.isConstructed {
		return ErrTeamMemberIsNotConstructed
	}
	return nil
}

// IsEqual compares two team members by identity.
func (m *TeamMember) IsEqual(other *TeamMember) bool {
	return m.id.IsEqual(other.id)
}

// ID returns the member's unique identifier.
func (m *TeamMember) ID() kernel.UUID {
	return m.id
}

// ForemanID returns the owning foreman's identifier.
func (m *TeamMember) ForemanID() kernel.UUID {
	return m.foremanID
}

// Name returns the member's display name.
func (m *TeamMember) Name() string {
	return m.name
}

// Specialty returns the service category the member is trained for.
func (m *TeamMember) Specialty() order.ServiceCategory {
	return m.specialty
}

// Contact returns the member's contact address.
func (m *TeamMember) Contact() string {
	return m.contact
}

// Skill returns the member's proficiency level.
func (m *TeamMember) Skill() SkillLevel {
	return m.skill
}

// Experience returns the free-text experience summary.
func (m *TeamMember) Experience() string {
	return m.experience
}

// Bio returns the member's self-description.
func (m *TeamMember) Bio() string {
	return m.bio
}

// Rating returns the accumulated client rating.
func (m *TeamMember) Rating() decimal.Decimal {
	return m.rating
}

// Version returns the optimistic-lock version.
func (m *TeamMember) Version() int {
	return m.version
}

// UpdateProfile replaces the member's mutable profile fields.
func (m *TeamMember) UpdateProfile(
	name string,
	specialty order.ServiceCategory,
	contact string,
	skill SkillLevel,
	experience string,
	bio string,
) error {
	if err := errors.Join(
		m.setName(name),
		m.setSpecialty(specialty),
		m.setContact(contact),
		m.setSkill(skill),
	); err != nil {
		return err
	}

	m.experience = experience
	m.bio = bio
	return nil
}

// SetRating replaces the member's rating. The value must stay within [0, 5].
func (m *TeamMember) SetRating(rating decimal.Decimal) error {
	return m.setRating(rating)
}

func (m *TeamMember) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	m.id = id
	return nil
}

func (m *TeamMember) setForemanID(foremanID kernel.UUID) error {
	if err := foremanID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("foremanID", err)
	}
	m.foremanID = foremanID
	return nil
}

func (m *TeamMember) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *TeamMember) setSpecialty(specialty order.ServiceCategory) error {
	if err := specialty.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("specialty", err)
	}
	m.specialty = specialty
	return nil
}

func (m *TeamMember) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	m.contact = contact
	return nil
}

func (m *TeamMember) setSkill(skill SkillLevel) error {
	if err := skill.Validate(); err != nil {
		return err
	}
	m.skill = skill
	return nil
}

func (m *TeamMember) setRating(rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(maxRating) {
		return errs.NewValueIsOutOfRangeError("rating", rating, decimal.Zero, maxRating)
	}
	m.rating = rating
	return nil
}

func (m *TeamMember) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError(
			"version",
			fmt.Errorf("%d is not a valid version", version),
		)
	}
	m.version = version
	return nil
}
