package postgres

import (
	"loadbooking/internal/adapters/out/postgres/bookingrepo"
	"loadbooking/internal/adapters/out/postgres/loadrepo"
	"loadbooking/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the loads, bookings and outbox_events tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&loadrepo.LoadDTO{},
		&bookingrepo.BookingDTO{},
		&outboxrepo.OutboxEventDTO{},
	)
}
