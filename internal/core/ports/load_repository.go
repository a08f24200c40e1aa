// Package ports defines the contracts between the application core and its adapters.
// Repositories persist aggregates, the unit of work bounds transactions and the
// publisher ships outbox events to the message broker.
package ports

import (
	"context"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
// Loads are never removed; cancellation is stored as a status.
type LoadRepository interface {
	// Add persists a new load.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists details and status of an existing load.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by id or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load and takes a row lock on it until the
	// surrounding transaction ends. Every operation that reads the bookings of a
	// load in order to change statuses must go through this method first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)
}
