package commands

import (
	"context"
)

// CancelLoadCommandHandler cancels loads from any status. Cancelling twice succeeds.
// Bookings of the load are left as they are.
type CancelLoadCommandHandler struct {
	uowFactory LoadUoWFactory
}

func NewCancelLoadCommandHandler(uowFactory LoadUoWFactory) CancelLoadCommandHandler {
	return CancelLoadCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelLoadCommandHandler) Handle(ctx context.Context, cmd CancelLoadCommand) error {
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

	aggregate.Cancel()

	if err = loadRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
