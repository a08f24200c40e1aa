package commands

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/ports"
)

// RelayOutboxEventsCommandHandler moves outbox messages to the broker.
// Messages are published in order. The first failure stops the batch; messages
// published before it are still marked, the rest stay pending for the next run.
// Delivery is at least once.
type RelayOutboxEventsCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewRelayOutboxEventsCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RelayOutboxEventsCommandHandler {
	return RelayOutboxEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

func (h RelayOutboxEventsCommandHandler) Handle(ctx context.Context, cmd RelayOutboxEventsCommand) error {
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

	outbox := uow.OutboxRepository()
	messages, err := outbox.FetchUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			h.logger.WarnContext(ctx, "outbox message not published",
				"event_id", message.ID.String(), "event_name", message.Name, "error", publishErr)
			break
		}
		published = append(published, message.ID)
	}

	if len(published) > 0 {
		if err = outbox.MarkPublished(ctx, published, now()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.DebugContext(ctx, "outbox batch relayed",
		"fetched", len(messages), "published", len(published))

	return publishErr
}
