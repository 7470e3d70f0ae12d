package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/pkg/guard"
)

// ErrTransitionPickupCommandIsNotConstructed is returned when a
// TransitionPickupCommand was not built via its constructor.
var ErrTransitionPickupCommandIsNotConstructed = errors.New(
	"TransitionPickupCommand must be created via NewTransitionPickupCommand constructor",
)

// TransitionPickupCommand represents a request to move a pickup to another
// lifecycle status.
type TransitionPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID       kernel.UUID
	organizationID kernel.UUID
	target         pickup.Status

	guard guard.ConstructorGuard
}

// NewTransitionPickupCommand creates a command to transition a pickup.
func NewTransitionPickupCommand(
	pickupID, organizationID kernel.UUID, target pickup.Status,
) (TransitionPickupCommand, error) {
	cmd := TransitionPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setOrganizationID(organizationID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionPickupCommand) Validate() error {
	return c.guard.Validate(ErrTransitionPickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup to transition.
func (c TransitionPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OrganizationID returns the owning organization.
func (c TransitionPickupCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Target returns the requested lifecycle status.
func (c TransitionPickupCommand) Target() pickup.Status {
	return c.target
}

func (c *TransitionPickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *TransitionPickupCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *TransitionPickupCommand) setTarget(target pickup.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
