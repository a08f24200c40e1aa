package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListLoadsQueryHandler pages through loads matching a filter.
type ListLoadsQueryHandler struct {
	db *gorm.DB
}

func NewListLoadsQueryHandler(db *gorm.DB) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{db: db}
}

// Handle counts all matches, then reads the requested page ordered by
// posted_at DESC, id DESC.
func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) (ListLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListLoadsQueryResponse{}, err
	}

	filtered := func() *gorm.DB {
		db := h.db.WithContext(ctx).Table("loads")
		if query.shipperID != nil {
			db = db.Where("shipper_id = ?", *query.shipperID)
		}
		if query.truckType != nil {
			db = db.Where("truck_type = ?", *query.truckType)
		}
		if query.status != nil {
			db = db.Where("status = ?", int(*query.status))
		}
		return db
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return ListLoadsQueryResponse{}, err
	}

	page := ListLoadsQueryResponse{
		Items: make([]LoadResponse, 0, query.size),
		Page:  query.page,
		Size:  query.size,
		Total: total,
	}
	if total == 0 {
		return page, nil
	}

	rows, err := filtered().
		Select(loadColumns).
		Order("posted_at DESC, id DESC").
		Offset((query.page - 1) * query.size).
		Limit(query.size).
		Rows()
	if err != nil {
		return ListLoadsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanLoad(rows)
		if scanErr != nil {
			return ListLoadsQueryResponse{}, scanErr
		}
		page.Items = append(page.Items, item)
	}

	if err = rows.Err(); err != nil {
		return ListLoadsQueryResponse{}, err
	}

	return page, nil
}
