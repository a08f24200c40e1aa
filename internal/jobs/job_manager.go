package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the outbox job settings.
type Config struct {
	RelaySchedule string
	BatchSize     int
	Retention     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	outboxRelayJob   *OutboxRelayJob
	outboxCleanupJob *OutboxCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	relayHandler relayHandler,
	purgeHandler purgeHandler,
	cfg Config,
	logger *slog.Logger,
) (*JobManager, error) {
	relayJob, err := NewOutboxRelayJob(relayHandler, cfg.RelaySchedule, cfg.BatchSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox relay job: %w", err)
	}

	cleanupJob, err := NewOutboxCleanupJob(purgeHandler, cfg.Retention, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox cleanup job: %w", err)
	}

	return &JobManager{
		outboxRelayJob:   relayJob,
		outboxCleanupJob: cleanupJob,
	}, nil
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.outboxRelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start outbox relay job: %w", err)
	}

	if err := jm.outboxCleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.outboxRelayJob.Stop()
		return fmt.Errorf("failed to start outbox cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to return.
func (jm *JobManager) StopAll() {
	jm.outboxRelayJob.Stop()
	jm.outboxCleanupJob.Stop()
}
