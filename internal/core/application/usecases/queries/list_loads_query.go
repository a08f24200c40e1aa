package queries

import (
	"errors"
	"fmt"
	"strings"

	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/errs"
	"loadbooking/internal/pkg/guard"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrListLoadsQueryIsNotConstructed = errors.New(
	"ListLoadsQuery must be created via NewListLoadsQuery constructor",
)

// LoadFilter narrows a load listing. Nil fields do not filter.
// Page is 1-based; zero page or size selects the default.
type LoadFilter struct {
	ShipperID *string
	TruckType *string
	Status    *load.Status
	Page      int
	Size      int
}

// ListLoadsQuery returns one page of loads, newest posted first.
//
// Example:
//
//	shipper := "shipper-1"
//	query, err := NewListLoadsQuery(LoadFilter{ShipperID: &shipper, Page: 2})
type ListLoadsQuery struct {
	shipperID *string
	truckType *string
	status    *load.Status
	page      int
	size      int

	guard guard.ConstructorGuard
}

func NewListLoadsQuery(filter LoadFilter) (ListLoadsQuery, error) {
	q := ListLoadsQuery{
		page:  DefaultPage,
		size:  DefaultPageSize,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(filter.Page),
		q.setSize(filter.Size),
		q.setStatus(filter.Status),
	); err != nil {
		return ListLoadsQuery{}, err
	}
	q.shipperID = nonBlank(filter.ShipperID)
	q.truckType = nonBlank(filter.TruckType)

	return q, nil
}

func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

func (q ListLoadsQuery) Page() int { return q.page }

func (q ListLoadsQuery) Size() int { return q.size }

func (q *ListLoadsQuery) setPage(page int) error {
	switch {
	case page == 0:
		return nil
	case page < 1:
		return errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is less than 1", page))
	}
	q.page = page
	return nil
}

func (q *ListLoadsQuery) setSize(size int) error {
	switch {
	case size == 0:
		return nil
	case size < 1 || size > MaxPageSize:
		return errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}
	q.size = size
	return nil
}

func (q *ListLoadsQuery) setStatus(status *load.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}
	s := *status
	q.status = &s
	return nil
}

func nonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ListLoadsQueryResponse is one page of loads plus the total match count.
type ListLoadsQueryResponse struct {
	Items []LoadResponse
	Page  int
	Size  int
	Total int64
}
