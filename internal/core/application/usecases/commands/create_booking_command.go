package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a transporter's bid on a load.
//
// Example:
//
//	cmd, err := NewCreateBookingCommand(kernel.NewUUID(), loadID, BookingSpec{
//	    TransporterID: "transporter-7",
//	    ProposedRate:  42000,
//	})
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	loadID    kernel.UUID
	terms     booking.Terms

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(bookingID, loadID kernel.UUID, spec BookingSpec) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setLoadID(loadID),
		cmd.setTerms(spec),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreateBookingCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateBookingCommand) Terms() booking.Terms {
	return c.terms
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	c.loadID = loadID
	return nil
}

func (c *CreateBookingCommand) setTerms(spec BookingSpec) error {
	terms, err := spec.terms()
	if err != nil {
		return err
	}
	c.terms = terms
	return nil
}
