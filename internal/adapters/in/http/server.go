package http

import (
	"net/http"

	"bizza/internal/core/application/usecases/commands"
	"bizza/internal/core/application/usecases/queries"
	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/crew"
	"bizza/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests by dispatching them to application use cases.
// All translation between wire DTOs and domain types happens here.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateOrderCommandHandler
	startOrderHandler         commands.StartOrderCommandHandler
	assignCrewHandler         commands.AssignCrewCommandHandler
	submitProposalHandler     commands.SubmitBudgetProposalCommandHandler
	approveProposalHandler    commands.ApproveBudgetProposalCommandHandler
	rejectProposalHandler     commands.RejectBudgetProposalCommandHandler
	updateItemsHandler        commands.UpdateProposalItemsCommandHandler
	recordExpenseHandler      commands.RecordExpenseCommandHandler
	updateProgressHandler     commands.UpdateProgressCommandHandler
	addDocumentationHandler   commands.AddDocumentationCommandHandler
	cancelOrderHandler        commands.CancelOrderCommandHandler
	submitReviewHandler       commands.SubmitReviewCommandHandler
	registerTeamMemberHandler commands.RegisterTeamMemberCommandHandler

	// Query handlers
	getOrderDetailHandler   queries.GetOrderDetailQueryHandler
	getForemanOrdersHandler queries.GetForemanOrdersQueryHandler
	getTeamMembersHandler   queries.GetTeamMembersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	startOrderHandler commands.StartOrderCommandHandler,
	assignCrewHandler commands.AssignCrewCommandHandler,
	submitProposalHandler commands.SubmitBudgetProposalCommandHandler,
	approveProposalHandler commands.ApproveBudgetProposalCommandHandler,
	rejectProposalHandler commands.RejectBudgetProposalCommandHandler,
	updateItemsHandler commands.UpdateProposalItemsCommandHandler,
	recordExpenseHandler commands.RecordExpenseCommandHandler,
	updateProgressHandler commands.UpdateProgressCommandHandler,
	addDocumentationHandler commands.AddDocumentationCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	submitReviewHandler commands.SubmitReviewCommandHandler,
	registerTeamMemberHandler commands.RegisterTeamMemberCommandHandler,
	getOrderDetailHandler queries.GetOrderDetailQueryHandler,
	getForemanOrdersHandler queries.GetForemanOrdersQueryHandler,
	getTeamMembersHandler queries.GetTeamMembersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		startOrderHandler:         startOrderHandler,
		assignCrewHandler:         assignCrewHandler,
		submitProposalHandler:     submitProposalHandler,
		approveProposalHandler:    approveProposalHandler,
		rejectProposalHandler:     rejectProposalHandler,
		updateItemsHandler:        updateItemsHandler,
		recordExpenseHandler:      recordExpenseHandler,
		updateProgressHandler:     updateProgressHandler,
		addDocumentationHandler:   addDocumentationHandler,
		cancelOrderHandler:        cancelOrderHandler,
		submitReviewHandler:       submitReviewHandler,
		registerTeamMemberHandler: registerTeamMemberHandler,
		getOrderDetailHandler:     getOrderDetailHandler,
		getForemanOrdersHandler:   getForemanOrdersHandler,
		getTeamMembersHandler:     getTeamMembersHandler,
	}
}

// RegisterRoutes wires all endpoints under /api/v1 behind bearer auth and
// per-route role gates. Clients own the money and the verdicts; foremen own
// the fieldwork.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte, middlewares ...echo.MiddlewareFunc) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", middlewares...)
	api.Use(BearerAuth(jwtSecret))

	clientGate := RequireRole(RoleClient, RoleAdmin)
	foremanGate := RequireRole(RoleForeman, RoleAdmin)

	api.POST("/orders", s.CreateOrder, clientGate)
	api.POST("/orders/:id/start", s.StartOrder, foremanGate)
	api.POST("/orders/:id/crew", s.AssignCrew, foremanGate)
	api.POST("/orders/:id/proposal", s.SubmitProposal, foremanGate)
	api.POST("/orders/:id/proposal/approve", s.ApproveProposal, clientGate)
	api.POST("/orders/:id/proposal/reject", s.RejectProposal, clientGate)
	api.PUT("/proposals/:id/items", s.UpdateProposalItems, foremanGate)
	api.POST("/proposals/:id/expenses", s.RecordExpense, foremanGate)
	api.PATCH("/orders/:id/progress", s.UpdateProgress, foremanGate)
	api.POST("/orders/:id/documentation", s.AddDocumentation, foremanGate)
	api.POST("/orders/:id/cancel", s.CancelOrder, clientGate)
	api.POST("/orders/:id/review", s.SubmitReview, clientGate)
	api.POST("/foremen/:id/team", s.RegisterTeamMember, foremanGate)

	api.GET("/orders/:id", s.GetOrder)
	api.GET("/foremen/:id/orders", s.GetForemanOrders)
	api.GET("/foremen/:id/team", s.GetTeamMembers)
}

// CreateOrder handles POST /api/v1/orders. The authenticated client becomes
// the order's owner.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	clientID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		clientID,
		req.Category,
		req.Address,
		req.ScheduledAt,
		req.Notes,
		req.RequiresBudgetApproval,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// StartOrder handles POST /api/v1/orders/:id/start.
func (s *Server) StartOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewStartOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.startOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCrew handles POST /api/v1/orders/:id/crew. Specialty mismatches come
// back as warnings; the binding itself always sticks.
func (s *Server) AssignCrew(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AssignCrewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	foremanID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}
	if req.ForemanID != "" {
		foremanID, err = kernel.UUIDFromString(req.ForemanID)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	workerIDs := make([]kernel.UUID, 0, len(req.WorkerIDs))
	for _, raw := range req.WorkerIDs {
		workerID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		workerIDs = append(workerIDs, workerID)
	}

	cmd, err := commands.NewAssignCrewCommand(orderID, foremanID, workerIDs)
	if err != nil {
		return badRequest(ctx, err)
	}

	mismatches, err := s.assignCrewHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return jsonError(ctx, err)
	}

	warnings := make([]CrewWarning, 0, len(mismatches))
	for _, m := range mismatches {
		warnings = append(warnings, CrewWarning{
			WorkerID:   m.WorkerID,
			WorkerName: m.WorkerName,
			Message:    m.Message(),
		})
	}

	return ctx.JSON(http.StatusOK, AssignCrewResponse{Warnings: warnings})
}

// SubmitProposal handles POST /api/v1/orders/:id/proposal.
func (s *Server) SubmitProposal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SubmitProposalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	foremanID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	items, err := lineItemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}

	proposalID := kernel.NewUUID()
	cmd, err := commands.NewSubmitBudgetProposalCommand(proposalID, orderID, foremanID, items, req.Notes)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.submitProposalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: proposalID.String()})
}

// ApproveProposal handles POST /api/v1/orders/:id/proposal/approve. Approval
// also moves the order into progress; both changes land in one transaction.
func (s *Server) ApproveProposal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	approverID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	cmd, err := commands.NewApproveBudgetProposalCommand(orderID, approverID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.approveProposalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectProposal handles POST /api/v1/orders/:id/proposal/reject.
func (s *Server) RejectProposal(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RejectProposalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectBudgetProposalCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.rejectProposalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateProposalItems handles PUT /api/v1/proposals/:id/items.
func (s *Server) UpdateProposalItems(ctx echo.Context) error {
	proposalID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	items, err := lineItemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateProposalItemsCommand(proposalID, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordExpense handles POST /api/v1/proposals/:id/expenses.
func (s *Server) RecordExpense(ctx echo.Context) error {
	proposalID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RecordExpenseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	unitPrice, err := kernel.MoneyFromString(req.UnitPrice)
	if err != nil {
		return badRequest(ctx, err)
	}

	expenseID := kernel.NewUUID()
	cmd, err := commands.NewRecordExpenseCommand(
		expenseID,
		proposalID,
		req.ItemName,
		req.Quantity,
		unitPrice,
		req.PurchasedAt,
		req.ProofRef,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.recordExpenseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: expenseID.String()})
}

// UpdateProgress handles PATCH /api/v1/orders/:id/progress.
func (s *Server) UpdateProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateProgressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	var cmd commands.UpdateProgressCommand
	if req.EvidenceFileRef != "" {
		uploaderID, principalErr := principalID(ctx)
		if principalErr != nil {
			return unauthorized(ctx, principalErr.Error())
		}
		cmd, err = commands.NewUpdateProgressCommandWithEvidence(
			orderID, req.Percent, uploaderID, req.EvidenceFileRef, req.EvidenceNote)
	} else {
		cmd, err = commands.NewUpdateProgressCommand(orderID, req.Percent)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.updateProgressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddDocumentation handles POST /api/v1/orders/:id/documentation. The
// authenticated foreman is recorded as the uploader.
func (s *Server) AddDocumentation(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AddDocumentationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	uploaderID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	documentationID := kernel.NewUUID()
	cmd, err := commands.NewAddDocumentationCommand(documentationID, orderID, uploaderID, req.FileRef, req.Description)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.addDocumentationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: documentationID.String()})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitReview handles POST /api/v1/orders/:id/review. The authenticated
// client is the reviewer; one review per order.
func (s *Server) SubmitReview(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req SubmitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	clientID, err := principalID(ctx)
	if err != nil {
		return unauthorized(ctx, err.Error())
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(reviewID, orderID, clientID, req.Rating, req.Comment)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.submitReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: reviewID.String()})
}

// RegisterTeamMember handles POST /api/v1/foremen/:id/team.
func (s *Server) RegisterTeamMember(ctx echo.Context) error {
	foremanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RegisterTeamMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	skill, err := crew.SkillLevelFromString(req.Skill)
	if err != nil {
		return badRequest(ctx, err)
	}

	memberID := kernel.NewUUID()
	cmd, err := commands.NewRegisterTeamMemberCommand(
		memberID,
		foremanID,
		req.Name,
		req.Specialty,
		req.Contact,
		skill,
		req.Experience,
		req.Bio,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.registerTeamMemberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: memberID.String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	detail, err := s.getOrderDetailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailResponse(detail))
}

// GetForemanOrders handles GET /api/v1/foremen/:id/orders.
func (s *Server) GetForemanOrders(ctx echo.Context) error {
	foremanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetForemanOrdersQuery(foremanID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getForemanOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]ForemanOrder, 0, len(orders))
	for _, o := range orders {
		response = append(response, ForemanOrder{
			ID:                     o.ID.String(),
			Category:               o.Category,
			Address:                o.Address,
			ScheduledAt:            o.ScheduledAt,
			RequiresBudgetApproval: o.RequiresBudgetApproval,
			Status:                 orderStatusLabel(o.Status),
			Progress:               o.Progress,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetTeamMembers handles GET /api/v1/foremen/:id/team.
func (s *Server) GetTeamMembers(ctx echo.Context) error {
	foremanID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetTeamMembersQuery(foremanID)
	if err != nil {
		return badRequest(ctx, err)
	}

	members, err := s.getTeamMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, err)
	}

	response := make([]TeamMember, 0, len(members))
	for _, m := range members {
		response = append(response, TeamMember{
			ID:         m.ID.String(),
			Name:       m.Name,
			Specialty:  m.Specialty,
			Contact:    m.Contact,
			Skill:      m.Skill.String(),
			Experience: m.Experience,
			Bio:        m.Bio,
			Rating:     m.Rating.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

func lineItemsFromRequest(reqItems []LineItemRequest) ([]budget.LineItem, error) {
	items := make([]budget.LineItem, 0, len(reqItems))
	for _, reqItem := range reqItems {
		unitPrice, err := kernel.MoneyFromString(reqItem.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := budget.NewLineItem(reqItem.Name, reqItem.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func orderDetailResponse(detail queries.GetOrderDetailQueryResponse) OrderDetail {
	response := OrderDetail{
		ID:                     detail.ID.String(),
		ClientID:               detail.ClientID.String(),
		Category:               detail.Category,
		Address:                detail.Address,
		ScheduledAt:            detail.ScheduledAt,
		Notes:                  detail.Notes,
		RequiresBudgetApproval: detail.RequiresBudgetApproval,
		Status:                 orderStatusLabel(detail.Status),
		Progress:               detail.Progress,
		WorkerIDs:              make([]string, 0, len(detail.WorkerIDs)),
		Documentation:          make([]DocumentationDetail, 0, len(detail.Documentation)),
	}

	if detail.ForemanID != nil {
		foremanID := detail.ForemanID.String()
		response.ForemanID = &foremanID
	}
	for _, workerID := range detail.WorkerIDs {
		response.WorkerIDs = append(response.WorkerIDs, workerID.String())
	}
	for _, doc := range detail.Documentation {
		response.Documentation = append(response.Documentation, DocumentationDetail{
			ID:          doc.ID.String(),
			UploaderID:  doc.UploaderID.String(),
			FileRef:     doc.FileRef,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
		})
	}

	if detail.Proposal != nil {
		response.Proposal = proposalDetailResponse(*detail.Proposal)
	}
	if detail.Review != nil {
		response.Review = &ReviewDetail{
			ID:        detail.Review.ID.String(),
			ClientID:  detail.Review.ClientID.String(),
			Rating:    detail.Review.Rating,
			Comment:   detail.Review.Comment,
			CreatedAt: detail.Review.CreatedAt,
		}
	}

	return response
}

func proposalDetailResponse(proposal queries.ProposalDetail) *ProposalDetail {
	response := &ProposalDetail{
		ID:              proposal.ID.String(),
		ForemanID:       proposal.ForemanID.String(),
		Status:          proposalStatusLabel(proposal.Status),
		Notes:           proposal.Notes,
		RejectionReason: proposal.RejectionReason,
		CreatedAt:       proposal.CreatedAt,
		Total:           proposal.Total.String(),
		Items:           make([]ProposalItem, 0, len(proposal.Items)),
		Expenses:        make([]ExpenseDetail, 0, len(proposal.Expenses)),
		SpentTotal:      proposal.SpentTotal.String(),
		Variance:        proposal.Variance.String(),
	}

	for _, item := range proposal.Items {
		response.Items = append(response.Items, ProposalItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		})
	}
	for _, expense := range proposal.Expenses {
		response.Expenses = append(response.Expenses, ExpenseDetail{
			ID:          expense.ID.String(),
			ItemName:    expense.ItemName,
			Quantity:    expense.Quantity,
			UnitPrice:   expense.UnitPrice.String(),
			Total:       expense.Total.String(),
			PurchasedAt: expense.PurchasedAt,
			ProofRef:    expense.ProofRef,
		})
	}

	return response
}
