package services

import (
	"fmt"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/order"
)

// SpecialtyMismatch reports a worker whose specialty does not match the
// order's service category. It is advisory only; assignment proceeds anyway.
type SpecialtyMismatch struct {
	// WorkerID identifies the mismatched worker.
	WorkerID string
	// WorkerName is the worker's display name.
	WorkerName string
	// WorkerSpecialty is the category the worker is trained for.
	WorkerSpecialty string
	// OrderCategory is the category the order asks for.
	OrderCategory string
}

// Message renders the warning for logs and API responses.
func (m SpecialtyMismatch) Message() string {
	return fmt.Sprintf(
		"worker %s (%s) specializes in %s, order requires %s",
		m.WorkerName, m.WorkerID, m.WorkerSpecialty, m.OrderCategory,
	)
}

// AssignmentAdvisor is a domain service that compares the specialties of a
// candidate crew with an order's service category.
//
// Mismatches never block an assignment. The foreman may knowingly send a
// plumber to a painting job; the advisor only makes that visible.
type AssignmentAdvisor struct{}

// NewAssignmentAdvisor creates a new AssignmentAdvisor instance.
func NewAssignmentAdvisor() AssignmentAdvisor {
	return AssignmentAdvisor{}
}

// Advise returns one warning per worker whose specialty differs from the
// order's category. Workers not present in the roster are skipped; holding
// a full profile for every worker is not required to assign them.
func (a AssignmentAdvisor) Advise(o *order.Order, roster []*crew.TeamMember) ([]SpecialtyMismatch, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var warnings []SpecialtyMismatch
	for _, member := range roster {
		if err := member.Validate(); err != nil {
			return nil, err
		}

		if member.Specialty().IsEqual(o.Category()) {
			continue
		}

		warnings = append(warnings, SpecialtyMismatch{
			WorkerID:        member.ID().String(),
			WorkerName:      member.Name(),
			WorkerSpecialty: member.Specialty().Name(),
			OrderCategory:   o.Category().Name(),
		})
	}

	return warnings, nil
}
