package load

import (
	"errors"
	"time"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

// Load is the aggregate root for a shipment posting.
//
// Invariants:
//   - id and postedAt never change after creation
//   - status changes only through TransitionTo and Cancel
//   - a cancelled load is never updated again
//   - a load is never physically deleted; Cancel is the delete
type Load struct {
	kernel.EventRecorder

	id       kernel.UUID
	details  Details
	postedAt time.Time
	status   Status

	guard guard.ConstructorGuard
}

// NewLoad posts a new load. The caller supplies the id and the creation time.
//
// Example:
//
//	facility, _ := load.NewFacility("Mumbai", "Pune", loadingAt, unloadingAt)
//	details, _ := load.NewDetails("shipper-1", facility, "Steel", "Flatbed", 2, 1200, "")
//	l, err := load.NewLoad(kernel.NewUUID(), details, time.Now().UTC())
func NewLoad(id kernel.UUID, details Details, postedAt time.Time) (*Load, error) {
	l := &Load{
		status: Posted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDetails(details),
		l.setPostedAt(postedAt),
	); err != nil {
		return nil, err
	}

	l.RecordEvent(PostedEvent{
		Event:       kernel.NewEvent(EventPosted, l.id),
		ShipperID:   details.ShipperID(),
		ProductType: details.ProductType(),
		TruckType:   details.TruckType(),
		TruckCount:  details.TruckCount(),
		Weight:      details.Weight(),
		Status:      l.status,
	})

	return l, nil
}

// RestoreLoad rebuilds a persisted load without raising events.
func RestoreLoad(id kernel.UUID, details Details, postedAt time.Time, status Status) (*Load, error) {
	l := &Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setDetails(details),
		l.setPostedAt(postedAt),
		l.setStatus(status),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares loads by identity.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

func (l *Load) Details() Details {
	return l.details
}

func (l *Load) PostedAt() time.Time {
	return l.postedAt
}

func (l *Load) Status() Status {
	return l.status
}

// Update replaces all mutable attributes. Cancelled loads are frozen.
func (l *Load) Update(details Details) error {
	if l.status == Cancelled {
		return errs.NewBusinessRuleError("cannot update cancelled load")
	}
	if err := l.setDetails(details); err != nil {
		return err
	}

	l.RecordEvent(UpdatedEvent{
		Event:       kernel.NewEvent(EventUpdated, l.id),
		ShipperID:   details.ShipperID(),
		ProductType: details.ProductType(),
		TruckType:   details.TruckType(),
		TruckCount:  details.TruckCount(),
		Weight:      details.Weight(),
	})
	return nil
}

// Cancel moves the load to Cancelled from any status. Cancelling twice is a no-op.
func (l *Load) Cancel() {
	if l.status == Cancelled {
		return
	}
	l.changeStatus(Cancelled)
}

// TransitionTo applies a guarded status change.
func (l *Load) TransitionTo(target Status) error {
	next, err := l.status.TransitionTo(target)
	if err != nil {
		return err
	}
	l.changeStatus(next)
	return nil
}

func (l *Load) changeStatus(next Status) {
	previous := l.status
	l.status = next
	l.RecordEvent(StatusChangedEvent{
		Event: kernel.NewEvent(EventStatusChanged, l.id),
		From:  previous,
		To:    next,
	})
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setDetails(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	l.details = details
	return nil
}

func (l *Load) setPostedAt(postedAt time.Time) error {
	if postedAt.IsZero() {
		return errs.NewValueIsRequiredError("postedAt")
	}
	l.postedAt = postedAt
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}
