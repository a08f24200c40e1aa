package queries

import (
	"context"

	"loadbooking/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetBookingQueryHandler struct {
	db *gorm.DB
}

func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingResponse, error) {
	if err := query.Validate(); err != nil {
		return BookingResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return BookingResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return BookingResponse{}, err
		}
		return BookingResponse{}, errs.NewObjectNotFoundError("booking", query.BookingID().String())
	}

	return scanBooking(rows)
}
