package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrUpdateReturnCommandIsNotConstructed is returned when an
// UpdateReturnCommand was not built via its constructor.
var ErrUpdateReturnCommandIsNotConstructed = errors.New(
	"UpdateReturnCommand must be created via NewUpdateReturnCommand constructor",
)

// UpdateReturnCommand represents a full rewrite of a return's mutable
// fields, including its order set. Only orders newly joining the set are
// checked for return eligibility; orders already on the return stay even if
// their status moved on since.
type UpdateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	organizationID kernel.UUID
	name           string
	driverID       *kernel.UUID
	scheduledDate  time.Time
	orderIDs       []kernel.UUID
	priority       kernel.Priority

	guard guard.ConstructorGuard
}

// NewUpdateReturnCommand creates a command to update an existing return.
func NewUpdateReturnCommand(
	returnID, organizationID kernel.UUID,
	name string,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
) (UpdateReturnCommand, error) {
	cmd := UpdateReturnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
		cmd.setDriverID(driverID),
		cmd.setScheduledDate(scheduledDate),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return UpdateReturnCommand{}, err
	}

	cmd.priority = priority
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateReturnCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier of the return to update.
func (c UpdateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// OrganizationID returns the owning organization.
func (c UpdateReturnCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the replacement display name.
func (c UpdateReturnCommand) Name() string {
	return c.name
}

// DriverID returns the replacement driver, or nil to unassign.
func (c UpdateReturnCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// ScheduledDate returns the replacement run date.
func (c UpdateReturnCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// OrderIDs returns the replacement order set.
func (c UpdateReturnCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Priority returns the replacement priority.
func (c UpdateReturnCommand) Priority() kernel.Priority {
	return c.priority
}

func (c *UpdateReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *UpdateReturnCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *UpdateReturnCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateReturnCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}

	c.driverID = driverID
	return nil
}

func (c *UpdateReturnCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *UpdateReturnCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
