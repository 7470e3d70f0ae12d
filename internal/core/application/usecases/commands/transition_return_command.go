package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/pkg/guard"
)

// ErrTransitionReturnCommandIsNotConstructed is returned when a
// TransitionReturnCommand was not built via its constructor.
var ErrTransitionReturnCommandIsNotConstructed = errors.New(
	"TransitionReturnCommand must be created via NewTransitionReturnCommand constructor",
)

// TransitionReturnCommand represents a request to move a return to another
// lifecycle status.
type TransitionReturnCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	organizationID kernel.UUID
	target         returns.Status

	guard guard.ConstructorGuard
}

// NewTransitionReturnCommand creates a command to transition a return.
func NewTransitionReturnCommand(
	returnID, organizationID kernel.UUID, target returns.Status,
) (TransitionReturnCommand, error) {
	cmd := TransitionReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setOrganizationID(organizationID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionReturnCommand) Validate() error {
	return c.guard.Validate(ErrTransitionReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to transition.
func (c TransitionReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// OrganizationID returns the owning organization.
func (c TransitionReturnCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Target returns the requested lifecycle status.
func (c TransitionReturnCommand) Target() returns.Status {
	return c.target
}

func (c *TransitionReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *TransitionReturnCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *TransitionReturnCommand) setTarget(target returns.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
