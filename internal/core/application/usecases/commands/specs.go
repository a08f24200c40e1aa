package commands

import (
	"context"
	"time"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/errs"
)

// LoadSpec carries the caller-supplied attributes of a load for create and update.
type LoadSpec struct {
	ShipperID      string
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
	ProductType    string
	TruckType      string
	TruckCount     int
	Weight         float64
	Comment        string
}

func (s LoadSpec) details() (load.Details, error) {
	facility, err := load.NewFacility(s.LoadingPoint, s.UnloadingPoint, s.LoadingDate, s.UnloadingDate)
	if err != nil {
		return load.Details{}, err
	}
	return load.NewDetails(s.ShipperID, facility, s.ProductType, s.TruckType, s.TruckCount, s.Weight, s.Comment)
}

// BookingSpec carries the caller-supplied terms of a booking.
type BookingSpec struct {
	TransporterID string
	ProposedRate  float64
	Comment       string
}

func (s BookingSpec) terms() (booking.Terms, error) {
	return booking.NewTerms(s.TransporterID, s.ProposedRate, s.Comment)
}

// now returns the current time at the precision PostgreSQL stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// lockBooking resolves the load of a booking, locks that load and reads all of
// its bookings under the lock. The returned target is the element of bookings
// with the requested id.
func lockBooking(
	ctx context.Context,
	uow UoW,
	bookingID kernel.UUID,
) (*load.Load, *booking.Booking, []*booking.Booking, error) {
	bookingRepo := uow.BookingRepository()
	unlocked, err := bookingRepo.Get(ctx, bookingID)
	if err != nil {
		return nil, nil, nil, err
	}

	l, err := uow.LoadRepository().GetForUpdate(ctx, unlocked.LoadID())
	if err != nil {
		return nil, nil, nil, err
	}

	bookings, err := bookingRepo.GetAllByLoad(ctx, l.ID())
	if err != nil {
		return nil, nil, nil, err
	}

	for _, b := range bookings {
		if b.ID().IsEqual(bookingID) {
			return l, b, bookings, nil
		}
	}

	// deleted between the unlocked read and the lock
	return nil, nil, nil, errs.NewObjectNotFoundError("booking", bookingID.String())
}
