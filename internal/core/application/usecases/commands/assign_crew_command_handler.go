package commands

import (
	"context"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/services"
)

// AssignCrewCommandHandler binds crews to orders and reports specialty
// mismatches from the assignment advisor. Warnings never block the binding.
type AssignCrewCommandHandler struct {
	uowFactory AssignUoWFactory
	advisor    services.AssignmentAdvisor
}

// NewAssignCrewCommandHandler creates a handler for crew assignment.
func NewAssignCrewCommandHandler(uowFactory AssignUoWFactory, advisor services.AssignmentAdvisor) AssignCrewCommandHandler {
	return AssignCrewCommandHandler{
		uowFactory: uowFactory,
		advisor:    advisor,
	}
}

// Handle binds the crew and returns advisory specialty-mismatch warnings.
// Workers missing from the foreman's stored roster are assigned without a
// warning; the advisor only inspects known profiles.
func (h *AssignCrewCommandHandler) Handle(ctx context.Context, cmd AssignCrewCommand) ([]services.SpecialtyMismatch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var warnings []services.SpecialtyMismatch

	err := withConflictRetry(ctx, func(ctx context.Context) error {
		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		roster, err := uow.CrewRepository().GetByForeman(ctx, cmd.ForemanID())
		if err != nil {
			return err
		}

		warnings, err = h.advisor.Advise(aggregate, assignedSubset(roster, cmd.WorkerIDs()))
		if err != nil {
			return err
		}

		if err = aggregate.AssignCrew(cmd.ForemanID(), cmd.WorkerIDs()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		return uow.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return warnings, nil
}

// assignedSubset filters the roster down to the workers actually being bound.
func assignedSubset(roster []*crew.TeamMember, workerIDs []kernel.UUID) []*crew.TeamMember {
	assigned := make(map[kernel.UUID]struct{}, len(workerIDs))
	for _, workerID := range workerIDs {
		assigned[workerID] = struct{}{}
	}

	var subset []*crew.TeamMember
	for _, member := range roster {
		if _, ok := assigned[member.ID()]; ok {
			subset = append(subset, member)
		}
	}

	return subset
}
