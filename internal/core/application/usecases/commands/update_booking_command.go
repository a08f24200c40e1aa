package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrUpdateBookingCommandIsNotConstructed = errors.New(
	"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
)

// UpdateBookingCommand replaces transporterId, proposedRate and comment of a booking.
type UpdateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	terms     booking.Terms

	guard guard.ConstructorGuard
}

func NewUpdateBookingCommand(bookingID kernel.UUID, spec BookingSpec) (UpdateBookingCommand, error) {
	cmd := UpdateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setTerms(spec),
	); err != nil {
		return UpdateBookingCommand{}, err
	}

	return cmd, nil
}

func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

func (c UpdateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c UpdateBookingCommand) Terms() booking.Terms {
	return c.terms
}

func (c *UpdateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *UpdateBookingCommand) setTerms(spec BookingSpec) error {
	terms, err := spec.terms()
	if err != nil {
		return err
	}
	c.terms = terms
	return nil
}
