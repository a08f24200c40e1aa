// Package loadrepo provides the GORM persistence of the load aggregate.
// It maps between the domain load and the "loads" table.
package loadrepo

import (
	"time"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure of a load. Shipper, truck type and
// status are indexed for the list filters; posted_at drives the list order.
type LoadDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ShipperID   string      `gorm:"not null;index"`
	Facility    FacilityDTO `gorm:"embedded;embeddedPrefix:facility_"`
	ProductType string      `gorm:"not null"`
	TruckType   string      `gorm:"not null;index"`
	NoOfTrucks  int         `gorm:"not null"`
	Weight      float64     `gorm:"not null"`
	Comment     string
	PostedAt    time.Time `gorm:"type:timestamptz;not null;index"`
	Status      int       `gorm:"type:smallint;not null;index"`
}

// TableName overrides GORM's default naming convention.
func (LoadDTO) TableName() string {
	return "loads"
}

// FacilityDTO is the embedded pick-up and drop-off block of a load row.
type FacilityDTO struct {
	LoadingPoint   string    `gorm:"not null"`
	UnloadingPoint string    `gorm:"not null"`
	LoadingDate    time.Time `gorm:"type:timestamptz;not null"`
	UnloadingDate  time.Time `gorm:"type:timestamptz;not null"`
}

func fromDomain(aggregate *load.Load) LoadDTO {
	details := aggregate.Details()
	facility := details.Facility()

	return LoadDTO{
		ID:        aggregate.ID().Bytes(),
		ShipperID: details.ShipperID(),
		Facility: FacilityDTO{
			LoadingPoint:   facility.LoadingPoint(),
			UnloadingPoint: facility.UnloadingPoint(),
			LoadingDate:    facility.LoadingDate(),
			UnloadingDate:  facility.UnloadingDate(),
		},
		ProductType: details.ProductType(),
		TruckType:   details.TruckType(),
		NoOfTrucks:  details.TruckCount(),
		Weight:      details.Weight(),
		Comment:     details.Comment(),
		PostedAt:    aggregate.PostedAt(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	facility, err := load.NewFacility(
		dto.Facility.LoadingPoint,
		dto.Facility.UnloadingPoint,
		dto.Facility.LoadingDate.UTC(),
		dto.Facility.UnloadingDate.UTC(),
	)
	if err != nil {
		return nil, err
	}

	details, err := load.NewDetails(
		dto.ShipperID,
		facility,
		dto.ProductType,
		dto.TruckType,
		dto.NoOfTrucks,
		dto.Weight,
		dto.Comment,
	)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, details, dto.PostedAt.UTC(), load.Status(dto.Status))
}
