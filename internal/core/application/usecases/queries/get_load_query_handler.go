package queries

import (
	"context"

	"loadbooking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetLoadQueryHandler reads one load row.
//
// Example:
//
//	query, _ := NewGetLoadQuery(loadID)
//	handler := NewGetLoadQueryHandler(db)
//	l, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

// Handle returns an ObjectNotFoundError when no load has the id.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT `+loadColumns+`
		FROM loads
		WHERE id = ?
	`, query.LoadID().Bytes()).Rows()
	if err != nil {
		return LoadResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return LoadResponse{}, err
		}
		return LoadResponse{}, errs.NewObjectNotFoundError("load", query.LoadID().String())
	}

	return scanLoad(rows)
}
