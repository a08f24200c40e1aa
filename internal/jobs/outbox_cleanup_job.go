package jobs

import (
	"context"
	"log/slog"
	"time"

	"loadbooking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CleanupSchedule runs the cleanup at the start of every hour.
const CleanupSchedule = "0 0 * * * *"

// DefaultRetention keeps published messages for a week.
const DefaultRetention = 7 * 24 * time.Hour

type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeOutboxEventsCommand) error
}

// OutboxCleanupJob deletes published outbox messages past their retention.
type OutboxCleanupJob struct {
	handler purgeHandler
	cmd     commands.PurgeOutboxEventsCommand
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOutboxCleanupJob(handler purgeHandler, retention time.Duration, logger *slog.Logger) (*OutboxCleanupJob, error) {
	if retention == 0 {
		retention = DefaultRetention
	}
	cmd, err := commands.NewPurgeOutboxEventsCommand(retention)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "outbox_cleanup_job")
	return &OutboxCleanupJob{
		handler: handler,
		cmd:     cmd,
		cron:    newCron(logger),
		logger:  logger,
	}, nil
}

func (j *OutboxCleanupJob) Start() error {
	if _, err := j.cron.AddFunc(CleanupSchedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job started (running hourly)",
		"retention", j.cmd.Retention().String())
	return nil
}

func (j *OutboxCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox cleanup job stopped")
}

func (j *OutboxCleanupJob) run() {
	ctx := context.Background()
	if err := j.handler.Handle(ctx, j.cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox cleanup job failed", "error", err)
	}
}
