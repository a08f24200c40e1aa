package commands

import (
	"errors"
	"time"

	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrPurgeOutboxEventsCommandIsNotConstructed = errors.New(
	"PurgeOutboxEventsCommand must be created via NewPurgeOutboxEventsCommand constructor",
)

// PurgeOutboxEventsCommand deletes published outbox messages older than a retention period.
type PurgeOutboxEventsCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeOutboxEventsCommand(retention time.Duration) (PurgeOutboxEventsCommand, error) {
	if retention <= 0 {
		return PurgeOutboxEventsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"retention", errors.New("retention must be positive"))
	}

	return PurgeOutboxEventsCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeOutboxEventsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeOutboxEventsCommandIsNotConstructed)
}

func (c PurgeOutboxEventsCommand) Retention() time.Duration {
	return c.retention
}
