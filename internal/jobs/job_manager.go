package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"bizza/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	escalationJob *PendingApprovalEscalationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	stalePendingHandler queries.GetStalePendingProposalsQueryHandler,
	staleAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		escalationJob: NewPendingApprovalEscalationJob(stalePendingHandler, staleAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.escalationJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending approval escalation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.escalationJob.Stop()
}
