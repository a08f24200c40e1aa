package services

import (
	"fmt"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/errs"
)

// BookingCoordinator applies the rules that couple booking outcomes back into
// load status. It never sets a load status directly; every change goes through
// load.Load.TransitionTo.
//
// Callers must hold the load row lock for the whole read-modify-write so the
// sibling list they pass in is the complete, current set for the load.
//
// Example usage:
//
//	coordinator := services.NewBookingCoordinator()
//	rejected, err := coordinator.Accept(target, siblings)
//	if err != nil {
//	    return err
//	}
//	// persist target and every booking in rejected in the same transaction
type BookingCoordinator struct{}

// NewBookingCoordinator creates a new BookingCoordinator instance.
func NewBookingCoordinator() BookingCoordinator {
	return BookingCoordinator{}
}

// Place attaches a freshly created booking to its load. A cancelled load refuses
// bookings; a posted load becomes booked; a booked load is left as is.
// It reports whether the load status changed.
func (c BookingCoordinator) Place(l *load.Load, b *booking.Booking) (bool, error) {
	if err := c.validatePair(l, b); err != nil {
		return false, err
	}

	switch l.Status() {
	case load.Cancelled:
		return false, errs.NewBusinessRuleErrorf("cannot create booking for cancelled load %s", l.ID())
	case load.Posted:
		if err := l.TransitionTo(load.Booked); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// Accept accepts target and rejects every other pending booking in siblings.
// siblings is the full booking list of the load and may include target itself.
// Accepted or rejected siblings are left untouched. The returned slice holds the
// bookings that were rejected by the cascade.
func (c BookingCoordinator) Accept(target *booking.Booking, siblings []*booking.Booking) ([]*booking.Booking, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if _, err := target.Status().Accept(); err != nil {
		return nil, err
	}

	for _, sibling := range siblings {
		if sibling.IsEqual(target) {
			continue
		}
		if !sibling.LoadID().IsEqual(target.LoadID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("siblings",
				fmt.Errorf("booking %s belongs to load %s, not %s", sibling.ID(), sibling.LoadID(), target.LoadID()))
		}
		if sibling.Status() == booking.Accepted {
			return nil, errs.NewBusinessRuleErrorf(
				"load %s already has accepted booking %s", target.LoadID(), sibling.ID())
		}
	}

	if err := target.Accept(); err != nil {
		return nil, err
	}

	rejected := make([]*booking.Booking, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.IsEqual(target) || sibling.Status() != booking.Pending {
			continue
		}
		if err := sibling.Reject(); err != nil {
			return nil, err
		}
		rejected = append(rejected, sibling)
	}

	return rejected, nil
}

// Reconcile is the reversion check run after a booking is rejected or deleted.
// remaining is the booking list of the load after that change. A booked load
// with no pending or accepted booking left goes back to posted.
// It reports whether the load status changed.
func (c BookingCoordinator) Reconcile(l *load.Load, remaining []*booking.Booking) (bool, error) {
	if err := l.Validate(); err != nil {
		return false, err
	}

	if l.Status() != load.Booked {
		return false, nil
	}

	for _, b := range remaining {
		if b.IsLive() {
			return false, nil
		}
	}

	if err := l.TransitionTo(load.Posted); err != nil {
		return false, err
	}
	return true, nil
}

func (c BookingCoordinator) validatePair(l *load.Load, b *booking.Booking) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return err
	}
	if !b.LoadID().IsEqual(l.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("loadId",
			fmt.Errorf("booking %s references load %s, not %s", b.ID(), b.LoadID(), l.ID()))
	}
	return nil
}
