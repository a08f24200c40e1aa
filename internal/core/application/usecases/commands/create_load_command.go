package commands

import (
	"errors"

	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// CreateLoadCommand represents a request to post a new load.
// The caller chooses the id so it can read the load back after the command.
//
// Example:
//
//	loadID := kernel.NewUUID()
//	cmd, err := NewCreateLoadCommand(loadID, spec)
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
//
//	handler := NewCreateLoadCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create load: %w", err)
//	}
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID  kernel.UUID
	details load.Details

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand validates the id and every load attribute.
func NewCreateLoadCommand(loadID kernel.UUID, spec LoadSpec) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setDetails(spec),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateLoadCommand) Details() load.Details {
	return c.details
}

func (c *CreateLoadCommand) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}
	c.loadID = loadID
	return nil
}

func (c *CreateLoadCommand) setDetails(spec LoadSpec) error {
	details, err := spec.details()
	if err != nil {
		return err
	}
	c.details = details
	return nil
}
