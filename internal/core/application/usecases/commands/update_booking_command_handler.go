package commands

import (
	"context"
)

// UpdateBookingCommandHandler changes the terms of a booking. Status and load are untouched.
type UpdateBookingCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateBookingCommandHandler(uowFactory UoWFactory) UpdateBookingCommandHandler {
	return UpdateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateBookingCommandHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) error {
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

	_, target, _, err := lockBooking(ctx, uow, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = target.UpdateTerms(cmd.Terms()); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
