package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrEditPickupCommandIsNotConstructed is returned when an EditPickupCommand
// was not built via its constructor.
var ErrEditPickupCommandIsNotConstructed = errors.New(
	"EditPickupCommand must be created via NewEditPickupCommand constructor",
)

// EditPickupCommand represents a full rewrite of a pickup's mutable fields,
// including its order set. Orders dropped from the set lose their claim;
// orders added to it are claimed, subject to the double-booking rule.
type EditPickupCommand struct { //nolint:recvcheck //using for validation
	pickupID       kernel.UUID
	organizationID kernel.UUID
	name           string
	driverID       kernel.UUID
	scheduledDate  time.Time
	orderIDs       []kernel.UUID
	priority       kernel.Priority

	guard guard.ConstructorGuard
}

// NewEditPickupCommand creates a command to edit an existing pickup.
func NewEditPickupCommand(
	pickupID, organizationID kernel.UUID,
	name string,
	driverID kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
) (EditPickupCommand, error) {
	cmd := EditPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPickupID(pickupID),
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
		cmd.setDriverID(driverID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return EditPickupCommand{}, err
	}

	cmd.priority = priority
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditPickupCommand) Validate() error {
	return c.guard.Validate(ErrEditPickupCommandIsNotConstructed)
}

// PickupID returns the identifier of the pickup to edit.
func (c EditPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OrganizationID returns the owning organization.
func (c EditPickupCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the replacement display name.
func (c EditPickupCommand) Name() string {
	return c.name
}

// DriverID returns the replacement driver.
func (c EditPickupCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ScheduledDate returns the replacement run date.
func (c EditPickupCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// OrderIDs returns the replacement order set.
func (c EditPickupCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Priority returns the replacement priority.
func (c EditPickupCommand) Priority() kernel.Priority {
	return c.priority
}

func (c *EditPickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *EditPickupCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *EditPickupCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *EditPickupCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	c.driverID = driverID
	return nil
}

func (c *EditPickupCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *EditPickupCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", err)
		}
	}

	c.orderIDs = orderIDs
	return nil
}
