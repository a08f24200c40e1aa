package commands

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/services"
)

// DeleteBookingCommandHandler removes a booking in any status and runs the
// load reversion check over the bookings that remain.
type DeleteBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
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

	l, target, bookings, err := lockBooking(ctx, uow, cmd.BookingID())
	if err != nil {
		return err
	}

	target.MarkDeleted()
	if err = uow.BookingRepository().Delete(ctx, target); err != nil {
		return err
	}

	remaining := make([]*booking.Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.IsEqual(target) {
			remaining = append(remaining, b)
		}
	}

	reverted, err := services.NewBookingCoordinator().Reconcile(l, remaining)
	if err != nil {
		return err
	}

	if reverted {
		if err = uow.LoadRepository().Update(ctx, l); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if reverted {
		h.logger.InfoContext(ctx, "load reverted to posted",
			"load_id", l.ID().String(), "booking_id", target.ID().String(), "reason", "deleted")
	}

	return nil
}
