package queries

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrGetLoadQueryIsNotConstructed = errors.New(
	"GetLoadQuery must be created via NewGetLoadQuery constructor",
)

// GetLoadQuery fetches a single load by id.
type GetLoadQuery struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadQuery(loadID kernel.UUID) (GetLoadQuery, error) {
	if err := loadID.Validate(); err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{loadID: loadID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.loadID
}
