// Package queries contains read operations that bypass the aggregates and read
// PostgreSQL directly through GORM.
package queries

import (
	"database/sql"
	"time"

	"loadbooking/internal/core/domain/model/booking"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadResponse is the read model of one load.
type LoadResponse struct {
	ID             kernel.UUID
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
	PostedAt       time.Time
	Status         load.Status
}

// BookingResponse is the read model of one booking.
type BookingResponse struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  float64
	Comment       string
	RequestedAt   time.Time
	Status        booking.Status
}

const loadColumns = `
	id,
	shipper_id,
	facility_loading_point,
	facility_unloading_point,
	facility_loading_date,
	facility_unloading_date,
	product_type,
	truck_type,
	no_of_trucks,
	weight,
	COALESCE(comment, ''),
	posted_at,
	status`

const bookingColumns = `
	id,
	load_id,
	transporter_id,
	proposed_rate,
	COALESCE(comment, ''),
	requested_at,
	status`

func scanLoad(rows *sql.Rows) (LoadResponse, error) {
	var resp LoadResponse
	var id uuid.UUID
	var status int

	err := rows.Scan(
		&id,
		&resp.ShipperID,
		&resp.LoadingPoint,
		&resp.UnloadingPoint,
		&resp.LoadingDate,
		&resp.UnloadingDate,
		&resp.ProductType,
		&resp.TruckType,
		&resp.TruckCount,
		&resp.Weight,
		&resp.Comment,
		&resp.PostedAt,
		&status,
	)
	if err != nil {
		return LoadResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoadResponse{}, err
	}
	resp.LoadingDate = resp.LoadingDate.UTC()
	resp.UnloadingDate = resp.UnloadingDate.UTC()
	resp.PostedAt = resp.PostedAt.UTC()
	resp.Status = load.Status(status)

	return resp, nil
}

func scanBooking(rows *sql.Rows) (BookingResponse, error) {
	var resp BookingResponse
	var id, loadID uuid.UUID
	var status int

	err := rows.Scan(
		&id,
		&loadID,
		&resp.TransporterID,
		&resp.ProposedRate,
		&resp.Comment,
		&resp.RequestedAt,
		&status,
	)
	if err != nil {
		return BookingResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return BookingResponse{}, err
	}
	if resp.LoadID, err = kernel.UUIDFromBytes(loadID[:]); err != nil {
		return BookingResponse{}, err
	}
	resp.RequestedAt = resp.RequestedAt.UTC()
	resp.Status = booking.Status(status)

	return resp, nil
}
