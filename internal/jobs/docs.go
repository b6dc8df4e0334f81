// Package jobs provides scheduled background tasks for the maintenance service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations that no request triggers on its own.
//
// # Available Jobs
//
// 1. PendingApprovalEscalationJob - Runs hourly to flag budget proposals that
// have been waiting for a client decision longer than the configured age.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(stalePendingHandler, 48*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The escalation job uses the cron expression "0 * * * *" and fires at the
// top of every hour. An order blocked on approval cannot start, so the hourly
// cadence keeps stuck work visible without spamming the log.
//
// # Error Handling
//
// Query failures are logged and the job waits for the next tick; a stale
// proposal is re-reported every hour until someone approves or rejects it.
package jobs
