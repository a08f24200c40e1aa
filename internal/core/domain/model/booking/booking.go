package booking

import (
	"errors"
	"time"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructor")

// Booking is a carrier offer against a load. It references the load by id only;
// cascade effects on the load are applied by services.BookingCoordinator.
type Booking struct {
	kernel.EventRecorder

	id          kernel.UUID
	loadID      kernel.UUID
	terms       Terms
	requestedAt time.Time
	status      Status

	guard guard.ConstructorGuard
}

// NewBooking creates a pending booking for loadID.
func NewBooking(id, loadID kernel.UUID, terms Terms, requestedAt time.Time) (*Booking, error) {
	b := &Booking{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setTerms(terms),
		b.setRequestedAt(requestedAt),
	); err != nil {
		return nil, err
	}

	b.RecordEvent(RequestedEvent{
		Event:         kernel.NewEvent(EventRequested, b.id),
		LoadID:        b.loadID,
		TransporterID: terms.TransporterID(),
		ProposedRate:  terms.ProposedRate(),
	})

	return b, nil
}

// RestoreBooking rebuilds a persisted booking without raising events.
func RestoreBooking(
	id, loadID kernel.UUID,
	terms Terms,
	requestedAt time.Time,
	status Status,
) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setTerms(terms),
		b.setRequestedAt(requestedAt),
		b.setStatus(status),
	); err != nil {
		return nil, err
	}

	return b, nil
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) LoadID() kernel.UUID {
	return b.loadID
}

func (b *Booking) Terms() Terms {
	return b.terms
}

func (b *Booking) RequestedAt() time.Time {
	return b.requestedAt
}

func (b *Booking) Status() Status {
	return b.status
}

// IsLive reports whether the booking is pending or accepted.
func (b *Booking) IsLive() bool {
	return b.status.IsLive()
}

// UpdateTerms replaces the offer. Rejected bookings are frozen; accepted ones
// stay editable.
// TODO: decide with product whether an accepted booking's rate may still change.
func (b *Booking) UpdateTerms(terms Terms) error {
	if b.status == Rejected {
		return errs.NewBusinessRuleError("cannot update rejected booking")
	}
	if err := b.setTerms(terms); err != nil {
		return err
	}

	b.RecordEvent(UpdatedEvent{
		Event:         kernel.NewEvent(EventUpdated, b.id),
		LoadID:        b.loadID,
		TransporterID: terms.TransporterID(),
		ProposedRate:  terms.ProposedRate(),
	})
	return nil
}

// Accept moves a pending booking to Accepted.
func (b *Booking) Accept() error {
	next, err := b.status.Accept()
	if err != nil {
		return err
	}
	b.changeStatus(next)
	return nil
}

// Reject moves a pending booking to Rejected.
func (b *Booking) Reject() error {
	next, err := b.status.Reject()
	if err != nil {
		return err
	}
	b.changeStatus(next)
	return nil
}

// MarkDeleted records the deletion so it reaches the outbox. The row itself is
// removed by the repository.
func (b *Booking) MarkDeleted() {
	b.RecordEvent(DeletedEvent{
		Event:  kernel.NewEvent(EventDeleted, b.id),
		LoadID: b.loadID,
		Status: b.status,
	})
}

func (b *Booking) changeStatus(next Status) {
	previous := b.status
	b.status = next
	b.RecordEvent(StatusChangedEvent{
		Event:  kernel.NewEvent(EventStatusChanged, b.id),
		LoadID: b.loadID,
		From:   previous,
		To:     next,
	})
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	b.loadID = loadID
	return nil
}

func (b *Booking) setTerms(terms Terms) error {
	if err := terms.Validate(); err != nil {
		return err
	}
	b.terms = terms
	return nil
}

func (b *Booking) setRequestedAt(requestedAt time.Time) error {
	if requestedAt.IsZero() {
		return errs.NewValueIsRequiredError("requestedAt")
	}
	b.requestedAt = requestedAt
	return nil
}

func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}
