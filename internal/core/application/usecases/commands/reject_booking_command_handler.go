package commands

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/domain/services"
)

// RejectBookingCommandHandler rejects a pending booking and reverts a BOOKED
// load to POSTED when no pending or accepted booking is left on it.
type RejectBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewRejectBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RejectBookingCommandHandler {
	return RejectBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (h RejectBookingCommandHandler) Handle(ctx context.Context, cmd RejectBookingCommand) error {
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

	if err = target.Reject(); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, target); err != nil {
		return err
	}

	// target is rejected now, so the list already reflects the change
	reverted, err := services.NewBookingCoordinator().Reconcile(l, bookings)
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
			"load_id", l.ID().String(), "booking_id", target.ID().String(), "reason", "rejected")
	}

	return nil
}
