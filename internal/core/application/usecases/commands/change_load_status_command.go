package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/guard"
)

var ErrChangeLoadStatusCommandIsNotConstructed = errors.New(
	"ChangeLoadStatusCommand must be created via NewChangeLoadStatusCommand constructor",
)

// ChangeLoadStatusCommand requests an explicit, table-checked status transition.
type ChangeLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	status load.Status

	guard guard.ConstructorGuard
}

func NewChangeLoadStatusCommand(loadID kernel.UUID, status load.Status) (ChangeLoadStatusCommand, error) {
	cmd := ChangeLoadStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeLoadStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLoadStatusCommandIsNotConstructed)
}

func (c ChangeLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

// Status is the requested target status.
func (c ChangeLoadStatusCommand) Status() load.Status {
	return c.status
}

func (c *ChangeLoadStatusCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *ChangeLoadStatusCommand) setStatus(status load.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
