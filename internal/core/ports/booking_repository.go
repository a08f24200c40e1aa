package ports

import (
	"context"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists terms and status of an existing booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by id or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Delete removes the booking row. The aggregate is still tracked so its
	// deletion event reaches the outbox.
	Delete(ctx context.Context, aggregate *booking.Booking) error

	// GetAllByLoad returns every booking of a load, oldest first.
	GetAllByLoad(ctx context.Context, loadID kernel.UUID) ([]*booking.Booking, error)
}
