package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrCreateDriverCommandIsNotConstructed is returned when a
// CreateDriverCommand was not built via its constructor.
var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand represents a request to add a driver to the roster.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	organizationID kernel.UUID
	name           string
	email          string
	phone          string
	vehicle        string

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to add a roster driver.
func NewCreateDriverCommand(
	driverID, organizationID kernel.UUID, name, email, phone, vehicle string,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	cmd.email = email
	cmd.phone = phone
	cmd.vehicle = vehicle
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the identifier for the new driver.
func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }

// OrganizationID returns the owning organization.
func (c CreateDriverCommand) OrganizationID() kernel.UUID { return c.organizationID }

// Name returns the driver's display name.
func (c CreateDriverCommand) Name() string { return c.name }

// Email returns the driver's contact email.
func (c CreateDriverCommand) Email() string { return c.email }

// Phone returns the driver's contact phone number.
func (c CreateDriverCommand) Phone() string { return c.phone }

// Vehicle returns the vehicle description.
func (c CreateDriverCommand) Vehicle() string { return c.vehicle }

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
