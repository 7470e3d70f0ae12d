package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/guard"
)

// ErrDeletePickupCommandIsNotConstructed is returned when a
// DeletePickupCommand was not built via its constructor.
var ErrDeletePickupCommandIsNotConstructed = errors.New(
	"DeletePickupCommand must be created via NewDeletePickupCommand constructor",
)

// DeletePickupCommand represents a request to remove a pickup permanently.
// The pickup's claims are released so its orders become schedulable again.
type DeletePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID       kernel.UUID
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePickupCommand creates a command to delete a pickup.
func NewDeletePickupCommand(pickupID, organizationID kernel.UUID) (DeletePickupCommand, error) {
	cmd := DeletePickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setOrganizationID(organizationID),
	); err != nil {
		return DeletePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePickupCommand) Validate() error {
	return c.guard.Validate(ErrDeletePickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup to delete.
func (c DeletePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OrganizationID returns the owning organization.
func (c DeletePickupCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

func (c *DeletePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *DeletePickupCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}
