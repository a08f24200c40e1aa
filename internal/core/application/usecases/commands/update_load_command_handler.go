package commands

import (
	"context"
)

// UpdateLoadCommandHandler replaces load details. Cancelled loads are refused.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the load so a concurrent status change cannot be overwritten.
func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) error {
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

	if err = aggregate.Update(cmd.Details()); err != nil {
		return err
	}

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
