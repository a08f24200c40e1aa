package commands

import (
	"errors"

	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

const (
	minRelayBatchSize = 1
	maxRelayBatchSize = 1000
)

var ErrRelayOutboxEventsCommandIsNotConstructed = errors.New(
	"RelayOutboxEventsCommand must be created via NewRelayOutboxEventsCommand constructor",
)

// RelayOutboxEventsCommand publishes one batch of pending outbox messages.
//
// Example:
//
//	cmd, _ := NewRelayOutboxEventsCommand(100)
//	handler := NewRelayOutboxEventsCommandHandler(uowFactory, publisher, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    logger.ErrorContext(ctx, "relay failed", "error", err)
//	}
type RelayOutboxEventsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxEventsCommand(batchSize int) (RelayOutboxEventsCommand, error) {
	if batchSize < minRelayBatchSize || batchSize > maxRelayBatchSize {
		return RelayOutboxEventsCommand{}, errs.NewValueIsOutOfRangeError(
			"batchSize", batchSize, minRelayBatchSize, maxRelayBatchSize)
	}

	return RelayOutboxEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RelayOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxEventsCommandIsNotConstructed)
}

func (c RelayOutboxEventsCommand) BatchSize() int {
	return c.batchSize
}
