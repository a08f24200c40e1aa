package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand replaces every mutable attribute of a load.
// Id, status and postedAt are never part of an update.
type UpdateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	details load.Details

	guard guard.ConstructorGuard
}

func NewUpdateLoadCommand(loadID kernel.UUID, spec LoadSpec) (UpdateLoadCommand, error) {
	cmd := UpdateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDetails(spec),
	); err != nil {
		return UpdateLoadCommand{}, err
	}

	return cmd, nil
}

func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c UpdateLoadCommand) Details() load.Details {
	return c.details
}

func (c *UpdateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *UpdateLoadCommand) setDetails(spec LoadSpec) error {
	details, err := spec.details()
	if err != nil {
		return err
	}
	c.details = details
	return nil
}
