package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListBookingsQueryHandler lists bookings ordered by requested_at DESC, id DESC.
type ListBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("bookings").Select(bookingColumns)
	if query.loadID != nil {
		db = db.Where("load_id = ?", query.loadID.Bytes())
	}
	if query.transporterID != nil {
		db = db.Where("transporter_id = ?", *query.transporterID)
	}
	if query.status != nil {
		db = db.Where("status = ?", int(*query.status))
	}

	rows, err := db.Order("requested_at DESC, id DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]BookingResponse, 0)
	for rows.Next() {
		item, scanErr := scanBooking(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		bookings = append(bookings, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
