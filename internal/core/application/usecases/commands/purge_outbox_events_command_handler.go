package commands

import (
	"context"
	"log/slog"
)

// PurgeOutboxEventsCommandHandler keeps the outbox table bounded. Unpublished
// messages are never removed.
type PurgeOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	logger     *slog.Logger
}

func NewPurgeOutboxEventsCommandHandler(uowFactory OutboxUoWFactory, logger *slog.Logger) PurgeOutboxEventsCommandHandler {
	return PurgeOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h PurgeOutboxEventsCommandHandler) Handle(ctx context.Context, cmd PurgeOutboxEventsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.OutboxRepository().DeletePublishedBefore(ctx, now().Add(-cmd.Retention()))
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if deleted > 0 {
		h.logger.InfoContext(ctx, "published outbox messages purged", "deleted", deleted)
	}

	return nil
}
