// Package bookingrepo provides the GORM persistence of the booking aggregate.
package bookingrepo

import (
	"time"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents a row of the "bookings" table. load_id is indexed
// because every cascade reads all bookings of one load.
type BookingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadID        uuid.UUID `gorm:"type:uuid;not null;index"`
	TransporterID string    `gorm:"not null;index"`
	ProposedRate  float64   `gorm:"not null"`
	Comment       string
	RequestedAt   time.Time `gorm:"type:timestamptz;not null"`
	Status        int       `gorm:"type:smallint;not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	terms := aggregate.Terms()

	return BookingDTO{
		ID:            aggregate.ID().Bytes(),
		LoadID:        aggregate.LoadID().Bytes(),
		TransporterID: terms.TransporterID(),
		ProposedRate:  terms.ProposedRate(),
		Comment:       terms.Comment(),
		RequestedAt:   aggregate.RequestedAt(),
		Status:        int(aggregate.Status()),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	terms, err := booking.NewTerms(dto.TransporterID, dto.ProposedRate, dto.Comment)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(id, loadID, terms, dto.RequestedAt.UTC(), booking.Status(dto.Status))
}
