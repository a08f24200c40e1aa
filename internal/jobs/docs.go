// Package jobs provides scheduled background tasks for the outbox.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Publishes pending outbox messages to Kafka (every second by default)
// 2. OutboxCleanupJob - Deletes published messages older than the retention period (hourly)
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(relayHandler, purgeHandler, jobs.Config{
//		RelaySchedule: "*/5 * * * * *",
//		BatchSize:     100,
//		Retention:     72 * time.Hour,
//	}, logger)
//	if err != nil {
//		return err
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with a leading seconds field.
// Overlapping runs of the same job are skipped rather than queued.
//
// # Error Handling
//
// - Handler errors are logged and the job keeps its schedule
// - A failed relay leaves unpublished messages for the next run
// - Failed job starts will stop any already running jobs
package jobs
