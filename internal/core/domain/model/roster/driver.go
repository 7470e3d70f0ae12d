package roster

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver is a member of the delivery roster. Name is required; contact
// details and vehicle are informational.
type Driver struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	email          string
	phone          string
	vehicle        string

	guard guard.ConstructorGuard
}

// NewDriver creates a roster driver.
func NewDriver(id, organizationID kernel.UUID, name, email, phone, vehicle string) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setOrganizationID(organizationID),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.email = email
	d.phone = phone
	d.vehicle = vehicle
	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id, organizationID kernel.UUID, name, email, phone, vehicle string) (*Driver, error) {
	return NewDriver(id, organizationID, name, email, phone, vehicle)
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// OrganizationID returns the owning organization.
func (d *Driver) OrganizationID() kernel.UUID { return d.organizationID }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Email returns the driver's contact email.
func (d *Driver) Email() string { return d.email }

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string { return d.phone }

// Vehicle returns the vehicle description.
func (d *Driver) Vehicle() string { return d.vehicle }

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	d.organizationID = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
