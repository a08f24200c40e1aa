package commands

import (
	"context"

	"loadbooking/internal/core/domain/model/load"
)

// CreateLoadCommandHandler posts new loads in POSTED status.
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

// NewCreateLoadCommandHandler creates a handler for load creation.
func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stamps postedAt and stores the load together with its load.posted event.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := load.NewLoad(cmd.LoadID(), cmd.Details(), now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
