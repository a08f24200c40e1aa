package queries

import (
	"errors"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// BookingFilter narrows a booking listing. Nil fields do not filter.
type BookingFilter struct {
	LoadID        *kernel.UUID
	TransporterID *string
	Status        *booking.Status
}

// ListBookingsQuery returns every matching booking, newest request first.
type ListBookingsQuery struct {
	loadID        *kernel.UUID
	transporterID *string
	status        *booking.Status

	guard guard.ConstructorGuard
}

func NewListBookingsQuery(filter BookingFilter) (ListBookingsQuery, error) {
	q := ListBookingsQuery{guard: guard.NewConstructorGuard()}

	if filter.LoadID != nil {
		if err := filter.LoadID.Validate(); err != nil {
			return ListBookingsQuery{}, err
		}
		id := *filter.LoadID
		q.loadID = &id
	}

	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListBookingsQuery{}, err
		}
		s := *filter.Status
		q.status = &s
	}

	q.transporterID = nonBlank(filter.TransporterID)

	return q, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}
