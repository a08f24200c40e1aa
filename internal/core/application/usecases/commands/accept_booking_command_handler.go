package commands

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/domain/services"
)

// AcceptBookingCommandHandler runs the accept cascade: the target becomes
// ACCEPTED and every other PENDING booking of the same load becomes REJECTED.
// The load keeps its status.
//
// Example:
//
//	handler := NewAcceptBookingCommandHandler(uowFactory, logger)
//	cmd, _ := NewAcceptBookingCommand(bookingID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown booking
//	case errors.Is(err, errs.ErrBusinessRuleViolated):
//	    // booking is not pending or the load already has an accepted booking
//	}
type AcceptBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewAcceptBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AcceptBookingCommandHandler {
	return AcceptBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle holds the load row lock for the whole cascade, so two concurrent
// accepts on sibling bookings are serialised and the second one fails.
func (h AcceptBookingCommandHandler) Handle(ctx context.Context, cmd AcceptBookingCommand) error {
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

	_, target, bookings, err := lockBooking(ctx, uow, cmd.BookingID())
	if err != nil {
		return err
	}

	rejected, err := services.NewBookingCoordinator().Accept(target, bookings)
	if err != nil {
		return err
	}

	bookingRepo := uow.BookingRepository()
	if err = bookingRepo.Update(ctx, target); err != nil {
		return err
	}
	for _, b := range rejected {
		if err = bookingRepo.Update(ctx, b); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "booking accepted",
		"booking_id", target.ID().String(),
		"load_id", target.LoadID().String(),
		"rejected_siblings", len(rejected))

	return nil
}
