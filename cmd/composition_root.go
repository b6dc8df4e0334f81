package cmd

import (
	"bizza/internal/adapters/out/postgres"
	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/application/usecases/queries"
	"bizza/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartOrderCommandHandler() commands.StartOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCrewCommandHandler() commands.AssignCrewCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCrewCommandHandler(f, services.NewAssignmentAdvisor())
}

func (c *CompositionRoot) CreateSubmitBudgetProposalCommandHandler() commands.SubmitBudgetProposalCommandHandler {
	var f commands.BudgetUoWFactory = FuncBudgetUoWFactory(func() commands.BudgetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitBudgetProposalCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveBudgetProposalCommandHandler() commands.ApproveBudgetProposalCommandHandler {
	var f commands.BudgetUoWFactory = FuncBudgetUoWFactory(func() commands.BudgetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveBudgetProposalCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectBudgetProposalCommandHandler() commands.RejectBudgetProposalCommandHandler {
	var f commands.ProposalUoWFactory = FuncProposalUoWFactory(func() commands.ProposalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectBudgetProposalCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProposalItemsCommandHandler() commands.UpdateProposalItemsCommandHandler {
	var f commands.ProposalUoWFactory = FuncProposalUoWFactory(func() commands.ProposalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProposalItemsCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordExpenseCommandHandler() commands.RecordExpenseCommandHandler {
	var f commands.ProposalUoWFactory = FuncProposalUoWFactory(func() commands.ProposalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordExpenseCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProgressCommandHandler() commands.UpdateProgressCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDocumentationCommandHandler() commands.AddDocumentationCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDocumentationCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterTeamMemberCommandHandler() commands.RegisterTeamMemberCommandHandler {
	var f commands.CrewUoWFactory = FuncCrewUoWFactory(func() commands.CrewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTeamMemberCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetForemanOrdersQueryHandler() queries.GetForemanOrdersQueryHandler {
	return queries.NewGetForemanOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTeamMembersQueryHandler() queries.GetTeamMembersQueryHandler {
	return queries.NewGetTeamMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStalePendingProposalsQueryHandler() queries.GetStalePendingProposalsQueryHandler {
	return queries.NewGetStalePendingProposalsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProposalUoWFactory func() commands.ProposalUoW

func (f FuncProposalUoWFactory) Create() commands.ProposalUoW {
	return f()
}

type FuncCrewUoWFactory func() commands.CrewUoW

func (f FuncCrewUoWFactory) Create() commands.CrewUoW {
	return f()
}

type FuncBudgetUoWFactory func() commands.BudgetUoW

func (f FuncBudgetUoWFactory) Create() commands.BudgetUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
