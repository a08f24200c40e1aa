package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrDeleteBookingCommandIsNotConstructed = errors.New(
	"DeleteBookingCommand must be created via NewDeleteBookingCommand constructor",
)

// DeleteBookingCommand removes a booking permanently.
type DeleteBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteBookingCommand(bookingID kernel.UUID) (DeleteBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return DeleteBookingCommand{}, err
	}

	return DeleteBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteBookingCommand) Validate() error {
	return c.guard.Validate(ErrDeleteBookingCommandIsNotConstructed)
}

func (c DeleteBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
