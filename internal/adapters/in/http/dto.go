package http

import "time"

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is returned by endpoints that mint a new resource id.
type Created struct {
	ID string `json:"id"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Category               string    `json:"category"`
	Address                string    `json:"address"`
	ScheduledAt            time.Time `json:"scheduled_at"`
	Notes                  string    `json:"notes"`
	RequiresBudgetApproval bool      `json:"requires_budget_approval"`
}

// AssignCrewRequest is the body of POST /api/v1/orders/:id/crew.
// ForemanID is optional; when empty the authenticated principal is used.
type AssignCrewRequest struct {
	ForemanID string   `json:"foreman_id,omitempty"`
	WorkerIDs []string `json:"worker_ids"`
}

// AssignCrewResponse carries advisory specialty warnings back to the caller.
type AssignCrewResponse struct {
	Warnings []CrewWarning `json:"warnings"`
}

// CrewWarning is one specialty mismatch; the assignment still went through.
type CrewWarning struct {
	WorkerID   string `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	Message    string `json:"message"`
}

// LineItemRequest is one priced line of a proposal body.
type LineItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// SubmitProposalRequest is the body of POST /api/v1/orders/:id/proposal.
type SubmitProposalRequest struct {
	Items []LineItemRequest `json:"items"`
	Notes string            `json:"notes"`
}

// RejectProposalRequest is the body of POST /api/v1/orders/:id/proposal/reject.
type RejectProposalRequest struct {
	Reason string `json:"reason"`
}

// UpdateItemsRequest is the body of PUT /api/v1/proposals/:id/items.
type UpdateItemsRequest struct {
	Items []LineItemRequest `json:"items"`
}

// RecordExpenseRequest is the body of POST /api/v1/proposals/:id/expenses.
type RecordExpenseRequest struct {
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	PurchasedAt time.Time `json:"purchased_at"`
	ProofRef    *string   `json:"proof_ref,omitempty"`
}

// UpdateProgressRequest is the body of PATCH /api/v1/orders/:id/progress.
// EvidenceFileRef optionally attaches a documentation entry to the update.
type UpdateProgressRequest struct {
	Percent         int    `json:"percent"`
	EvidenceFileRef string `json:"evidence_file_ref,omitempty"`
	EvidenceNote    string `json:"evidence_note,omitempty"`
}

// AddDocumentationRequest is the body of POST /api/v1/orders/:id/documentation.
type AddDocumentationRequest struct {
	FileRef     string `json:"file_ref"`
	Description string `json:"description"`
}

// SubmitReviewRequest is the body of POST /api/v1/orders/:id/review.
type SubmitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// RegisterTeamMemberRequest is the body of POST /api/v1/foremen/:id/team.
type RegisterTeamMemberRequest struct {
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Contact    string `json:"contact"`
	Skill      string `json:"skill"`
	Experience string `json:"experience"`
	Bio        string `json:"bio"`
}

// OrderDetail is the full read model of one order.
type OrderDetail struct {
	ID                     string                `json:"id"`
	ClientID               string                `json:"client_id"`
	Category               string                `json:"category"`
	Address                string                `json:"address"`
	ScheduledAt            time.Time             `json:"scheduled_at"`
	Notes                  string                `json:"notes,omitempty"`
	RequiresBudgetApproval bool                  `json:"requires_budget_approval"`
	Status                 string                `json:"status"`
	ForemanID              *string               `json:"foreman_id,omitempty"`
	WorkerIDs              []string              `json:"worker_ids"`
	Progress               int                   `json:"progress"`
	Proposal               *ProposalDetail       `json:"proposal,omitempty"`
	Documentation          []DocumentationDetail `json:"documentation"`
	Review                 *ReviewDetail         `json:"review,omitempty"`
}

// ProposalDetail is the active proposal with its items and actual spending.
type ProposalDetail struct {
	ID              string          `json:"id"`
	ForemanID       string          `json:"foreman_id"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	Total           string          `json:"total"`
	Items           []ProposalItem  `json:"items"`
	Expenses        []ExpenseDetail `json:"expenses"`
	SpentTotal      string          `json:"spent_total"`
	Variance        string          `json:"variance"`
}

// ProposalItem is one priced line of the proposal view.
type ProposalItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

// ExpenseDetail is one recorded purchase against the proposal.
type ExpenseDetail struct {
	ID          string    `json:"id"`
	ItemName    string    `json:"item_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   string    `json:"unit_price"`
	Total       string    `json:"total"`
	PurchasedAt time.Time `json:"purchased_at"`
	ProofRef    *string   `json:"proof_ref,omitempty"`
}

// DocumentationDetail is one work-evidence entry.
type DocumentationDetail struct {
	ID          string    `json:"id"`
	UploaderID  string    `json:"uploader_id"`
	FileRef     string    `json:"file_ref"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewDetail is the client's rating of the completed order.
type ReviewDetail struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ForemanOrder is one row of a foreman's work queue.
type ForemanOrder struct {
	ID                     string    `json:"id"`
	Category               string    `json:"category"`
	Address                string    `json:"address"`
	ScheduledAt            time.Time `json:"scheduled_at"`
	RequiresBudgetApproval bool      `json:"requires_budget_approval"`
	Status                 string    `json:"status"`
	Progress               int       `json:"progress"`
}

// TeamMember is one row of a foreman's roster.
type TeamMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Contact    string `json:"contact,omitempty"`
	Skill      string `json:"skill"`
	Experience string `json:"experience,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Rating     string `json:"rating"`
}
