package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/pkg/guard"
)

var ErrCancelLoadCommandIsNotConstructed = errors.New(
	"CancelLoadCommand must be created via NewCancelLoadCommand constructor",
)

// CancelLoadCommand soft-deletes a load by moving it to CANCELLED.
type CancelLoadCommand struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelLoadCommand(loadID kernel.UUID) (CancelLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return CancelLoadCommand{}, err
	}

	return CancelLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelLoadCommand) Validate() error {
	return c.guard.Validate(ErrCancelLoadCommandIsNotConstructed)
}

func (c CancelLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
