package commands

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var (
	// ErrCreateReturnCommandIsNotConstructed is returned when a
	// CreateReturnCommand was not built via its constructor.
	ErrCreateReturnCommandIsNotConstructed = errors.New(
		"CreateReturnCommand must be created via NewCreateReturnCommand constructor",
	)

	// ErrOrderNotReturnEligible is returned when a return lists an order
	// that has not reached a returnable status. Eligibility is checked when
	// the order joins the return; a later status change does not evict it.
	ErrOrderNotReturnEligible = errors.New("order has not been picked up or delivered")
)

// CreateReturnCommand represents a request to schedule a return run over a
// batch of previously collected orders. The driver is optional; a return
// can be planned before anyone is assigned to drive it.
type CreateReturnCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	organizationID kernel.UUID
	name           string
	driverID       *kernel.UUID
	scheduledDate  time.Time
	orderIDs       []kernel.UUID
	priority       kernel.Priority
	status         returns.Status

	guard guard.ConstructorGuard
}

// NewCreateReturnCommand creates a command to schedule a new return.
func NewCreateReturnCommand(
	returnID, organizationID kernel.UUID,
	name string,
	driverID *kernel.UUID,
	scheduledDate time.Time,
	orderIDs []kernel.UUID,
	priority kernel.Priority,
	status returns.Status,
) (CreateReturnCommand, error) {
	cmd := CreateReturnCommand{
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
		return CreateReturnCommand{}, err
	}

	cmd.priority = priority
	cmd.status = status
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnCommandIsNotConstructed)
}

// ReturnID returns the identifier for the new return.
func (c CreateReturnCommand) ReturnID() kernel.UUID {
	return c.returnID
}

// OrganizationID returns the owning organization.
func (c CreateReturnCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// Name returns the return's display name.
func (c CreateReturnCommand) Name() string {
	return c.name
}

// DriverID returns the optional driver assigned to the run.
func (c CreateReturnCommand) DriverID() *kernel.UUID {
	return c.driverID
}

// ScheduledDate returns the date the run is planned for.
func (c CreateReturnCommand) ScheduledDate() time.Time {
	return c.scheduledDate
}

// OrderIDs returns the order batch to return.
func (c CreateReturnCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

// Priority returns the requested priority.
func (c CreateReturnCommand) Priority() kernel.Priority {
	return c.priority
}

// Status returns the requested initial status. StatusUnknown means the
// caller left it out and the run starts scheduled.
func (c CreateReturnCommand) Status() returns.Status {
	return c.status
}

func (c *CreateReturnCommand) setReturnID(returnID kernel.UUID) error {
	if err := returnID.Validate(); err != nil {
		return err
	}

	c.returnID = returnID
	return nil
}

func (c *CreateReturnCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateReturnCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateReturnCommand) setDriverID(driverID *kernel.UUID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
	}

	c.driverID = driverID
	return nil
}

func (c *CreateReturnCommand) setScheduledDate(scheduledDate time.Time) error {
	if scheduledDate.IsZero() {
		return errs.NewValueIsRequiredError("scheduledDate")
	}

	c.scheduledDate = scheduledDate
	return nil
}

func (c *CreateReturnCommand) setOrderIDs(orderIDs []kernel.UUID) error {
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
