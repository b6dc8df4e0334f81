package crew

import (
	"fmt"

	"bizza/internal/pkg/errs"
)

// SkillLevel classifies how experienced a team member is.
// The zero value is invalid; use the named constants.
type SkillLevel int

const (
	// Unknown is the zero value and is not a valid skill level.
	Unknown SkillLevel = iota
	// Beginner marks a member still learning the trade.
	Beginner
	// Intermediate marks a member who works independently.
	Intermediate
	// Expert marks a member trusted with the hardest jobs.
	Expert
)

func getSkillLevelStrings() map[SkillLevel]string {
	return map[SkillLevel]string{
		Unknown:      "Unknown",
		Beginner:     "Beginner",
		Intermediate: "Intermediate",
		Expert:       "Expert",
	}
}

func getValidSkillLevelStrings() map[SkillLevel]string {
	skillLevels := getSkillLevelStrings()
	delete(skillLevels, Unknown)
	return skillLevels
}

// Validate checks that the skill level is one of the named non-zero constants.
func (s SkillLevel) Validate() error {
	if _, ok := getValidSkillLevelStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"skillLevel",
			fmt.Errorf("%d is not a valid skill level", int(s)),
		)
	}
	return nil
}

// String returns the human-readable skill level name.
func (s SkillLevel) String() string {
	if name, ok := getSkillLevelStrings()[s]; ok {
		return name
	}
	return fmt.Sprintf("SkillLevel(%d)", int(s))
}

// SkillLevelFromString parses a skill level name, case-sensitively.
func SkillLevelFromString(raw string) (SkillLevel, error) {
	for skillLevel, name := range getValidSkillLevelStrings() {
		if name == raw {
			return skillLevel, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"skillLevel",
		fmt.Errorf("%q is not a valid skill level", raw),
	)
}
