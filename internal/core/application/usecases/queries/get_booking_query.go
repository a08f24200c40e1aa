package queries

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrGetBookingQueryIsNotConstructed = errors.New(
	"GetBookingQuery must be created via NewGetBookingQuery constructor",
)

// GetBookingQuery fetches a single booking by id.
type GetBookingQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetBookingQuery(bookingID kernel.UUID) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}
	return GetBookingQuery{bookingID: bookingID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}
