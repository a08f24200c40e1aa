package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrAcceptBookingCommandIsNotConstructed = errors.New(
	"AcceptBookingCommand must be created via NewAcceptBookingCommand constructor",
)

// AcceptBookingCommand accepts one pending booking and rejects its pending siblings.
type AcceptBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptBookingCommand(bookingID kernel.UUID) (AcceptBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return AcceptBookingCommand{}, err
	}

	return AcceptBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptBookingCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBookingCommandIsNotConstructed)
}

func (c AcceptBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
