package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrCreatePickupCommandIsNotConstructed is returned when a
// CreatePickupCommand was not built via its constructor.
var ErrCreatePickupCommandIsNotConstructed = errors.New(
	"CreatePickupCommand must be created via NewCreatePickupCommand constructor",
)

// CreatePickupCommand represents a request to schedule a pickup run over an
// initial batch of orders. The batch must be non-empty; a pickup without
// orders has nothing to collect.
type CreatePickupCommand struct { //nolint:recvcheck //using for validation
	pickupID       kernel.UUID
	organizationID kernel.UUID
	name           string
	driverID       kernel.UUID
	scheduledDate  time.Time
	orderIDs       []kernel.UUID
	priority       kernel.Priority
	status         pickup.Status

	guard guard.ConstructorGuard
}

// NewCreatePickupCommand creates a command to schedule a new pickup.
func NewCreatePickupCommand(
	pickupID, organizationID kernel.UUID,
	name string,
	driverID kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status pickup.Status,
) (CreatePickupCommand, error) {
	cmd := CreatePickupCommand{
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
		return CreatePickupCommand{}, err
	}

	cmd.priority = priority
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
}

// PickupID returns the identifier for the new pickup.
func (c CreatePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

// OrganizationID returns the owning organization.
func (c CreatePickupCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the pickup's display name.
func (c CreatePickupCommand) Name() string {
	return c.name
}

// DriverID returns the driver assigned to the run.
func (c CreatePickupCommand) DriverID() kernel.UUID {
	return c.driverID
}

// ScheduledDate returns the date the run is planned for.
func (c CreatePickupCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// OrderIDs returns the initial order batch.
func (c CreatePickupCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Priority returns the requested priority.
func (c CreatePickupCommand) Priority() kernel.Priority {
	return c.priority
}

// Status returns the requested initial status. StatusUnknown means the
// caller left it out and the run starts scheduled.
func (c CreatePickupCommand) Status() pickup.Status {
	return c.status
}

func (c *CreatePickupCommand) setPickupID(pickupID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}

	c.pickupID = pickupID
	return nil
}

func (c *CreatePickupCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreatePickupCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreatePickupCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	c.driverID = driverID
	return nil
}

func (c *CreatePickupCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreatePickupCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
