package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

// ErrDeleteReturnCommandIsNotConstructed is returned when a
// DeleteReturnCommand was not built via its constructor.
var ErrDeleteReturnCommandIsNotConstructed = errors.New(
	"DeleteReturnCommand must be created via NewDeleteReturnCommand constructor",
)

// DeleteReturnCommand represents a request to remove a return permanently.
// Returns hold no claims, so deletion touches nothing else.
type DeleteReturnCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteReturnCommand creates a command to delete a return.
func NewDeleteReturnCommand(returnID, organizationID kernel.UUID) (DeleteReturnCommand, error) {
	cmd := DeleteReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setOrganizationID(organizationID),
	); err != nil {
		return DeleteReturnCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteReturnCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to delete.
func (c DeleteReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// OrganizationID returns the owning organization.
func (c DeleteReturnCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

func (c *DeleteReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *DeleteReturnCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}
