package jobs

import (
	"context"
	"log/slog"
	"time"

	"bizza/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingApprovalEscalationJob surfaces budget proposals stuck in
// PendingApproval. Runs hourly and logs one escalation per stale proposal
// so operators can chase the client.
type PendingApprovalEscalationJob struct {
	handler  queries.GetStalePendingProposalsQueryHandler
	staleAge time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingApprovalEscalationJob creates the escalation job. staleAge is
// how long a proposal may sit unanswered before it is flagged.
func NewPendingApprovalEscalationJob(
	handler queries.GetStalePendingProposalsQueryHandler,
	staleAge time.Duration,
	logger *slog.Logger,
) *PendingApprovalEscalationJob {
	return &PendingApprovalEscalationJob{
		handler:  handler,
		staleAge: staleAge,
		cron:     cron.New(),
		logger:   logger.With("component", "pending_approval_escalation_job"),
	}
}

// Start begins the escalation job, running at the top of every hour.
func (j *PendingApprovalEscalationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending approval escalation job started (running hourly)",
		"stale_age", j.staleAge.String())
	return nil
}

// Stop stops the escalation job.
func (j *PendingApprovalEscalationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending approval escalation job stopped")
}

func (j *PendingApprovalEscalationJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStalePendingProposalsQuery(j.staleAge)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending approval escalation job misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending approval escalation job failed", "error", err)
		return
	}

	for _, proposal := range stale {
		j.logger.WarnContext(ctx, "Budget proposal awaiting approval past the deadline",
			"proposal_id", proposal.ProposalID.String(),
			"order_id", proposal.OrderID.String(),
			"client_id", proposal.ClientID.String(),
			"foreman_id", proposal.ForemanID.String(),
			"address", proposal.Address,
			"total", proposal.Total.String(),
			"pending_since", proposal.CreatedAt.Format(time.RFC3339),
		)
	}
}
