package jobs

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRelaySchedule runs the relay every second.
const DefaultRelaySchedule = "* * * * * *"

type relayHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxEventsCommand) error
}

// OutboxRelayJob publishes pending outbox messages on a cron schedule.
// A run that is still publishing when the next tick fires causes that tick to be skipped.
type OutboxRelayJob struct {
	handler  relayHandler
	cmd      commands.RelayOutboxEventsCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates a relay job publishing up to batchSize messages per run.
func NewOutboxRelayJob(
	handler relayHandler,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxEventsCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultRelaySchedule
	}

	logger = logger.With("component", "outbox_relay_job")
	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron:     newCron(logger),
		logger:   logger,
	}, nil
}

// Start registers the relay on its schedule and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started",
		"schedule", j.schedule, "batch_size", j.cmd.BatchSize())
	return nil
}

// Stop stops the scheduler and waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, j.cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
	}
}
