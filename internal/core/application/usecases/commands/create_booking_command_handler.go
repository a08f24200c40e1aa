package commands

import (
	"context"
	"log/slog"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/services"
)

// CreateBookingCommandHandler records a new PENDING booking and marks its load
// BOOKED when the load was still POSTED. Both writes share one transaction.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle locks the load first so a concurrent cancel cannot slip between the
// status check and the insert.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
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
	bookingRepo := uow.BookingRepository()

	l, err := loadRepo.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	b, err := booking.NewBooking(cmd.BookingID(), cmd.LoadID(), cmd.Terms(), now())
	if err != nil {
		return err
	}

	loadChanged, err := services.NewBookingCoordinator().Place(l, b)
	if err != nil {
		return err
	}

	if err = bookingRepo.Add(ctx, b); err != nil {
		return err
	}

	if loadChanged {
		if err = loadRepo.Update(ctx, l); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if loadChanged {
		h.logger.InfoContext(ctx, "load booked by first booking",
			"load_id", l.ID().String(), "booking_id", b.ID().String())
	}

	return nil
}
