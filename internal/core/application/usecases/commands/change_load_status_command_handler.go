package commands

import (
	"context"
)

// ChangeLoadStatusCommandHandler applies TransitionTo on a locked load.
// Illegal moves fail with "invalid status transition from X to Y".
type ChangeLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewChangeLoadStatusCommandHandler(uowFactory LoadUoWFactory) ChangeLoadStatusCommandHandler {
	return ChangeLoadStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeLoadStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLoadStatusCommand) error {
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

	loadRepo := uow.LoadRepository()
	aggregate, err := loadRepo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Status()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
