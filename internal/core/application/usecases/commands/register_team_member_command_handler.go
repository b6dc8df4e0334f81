package commands

import (
	"context"

	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/order"
)

// RegisterTeamMemberCommandHandler adds workers to a foreman's roster.
type RegisterTeamMemberCommandHandler struct {
	uowFactory CrewUoWFactory
}

// NewRegisterTeamMemberCommandHandler creates a handler for roster registration.
func NewRegisterTeamMemberCommandHandler(uowFactory CrewUoWFactory) RegisterTeamMemberCommandHandler {
	return RegisterTeamMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists a new team member with a zero starting rating.
func (h *RegisterTeamMemberCommandHandler) Handle(ctx context.Context, cmd RegisterTeamMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	specialty, err := order.NewServiceCategory(cmd.Specialty())
	if err != nil {
		return err
	}

	member, err := crew.NewTeamMember(
		cmd.MemberID(), cmd.ForemanID(), cmd.Name(), specialty,
		cmd.Contact(), cmd.Skill(), cmd.Experience(), cmd.Bio(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CrewRepository().Add(ctx, member); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
