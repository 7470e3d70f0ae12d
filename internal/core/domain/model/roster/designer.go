package roster

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrDesignerIsNotConstructed is returned when a Designer instance was not
// created through NewDesigner or RestoreDesigner.
var ErrDesignerIsNotConstructed = errors.New("Designer must be created via NewDesigner or RestoreDesigner")

// Designer is the person or studio that placed an order.
type Designer struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	email          string
	phone          string

	guard guard.ConstructorGuard
}

// NewDesigner creates a roster designer.
func NewDesigner(id, organizationID kernel.UUID, name, email, phone string) (*Designer, error) {
	d := &Designer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(id),
		d.setOrganizationID(organizationID),
		d.setName(name),
	); err != nil {
		return nil, err
	}

	d.email = email
	d.phone = phone
	return d, nil
}

// RestoreDesigner reconstructs a designer from persistence.
func RestoreDesigner(id, organizationID kernel.UUID, name, email, phone string) (*Designer, error) {
	return NewDesigner(id, organizationID, name, email, phone)
}

// Validate ensures the Designer was created through a constructor.
func (d *Designer) Validate() error {
	if d == nil {
		return ErrDesignerIsNotConstructed
	}
	return d.guard.Validate(ErrDesignerIsNotConstructed)
}

// ID returns the designer's unique identifier.
func (d *Designer) ID() kernel.UUID { return d.id }

// OrganizationID returns the owning organization.
func (d *Designer) OrganizationID() kernel.UUID { return d.organizationID }

// Name returns the designer's display name.
func (d *Designer) Name() string { return d.name }

// Email returns the designer's contact email.
func (d *Designer) Email() string { return d.email }

// Phone returns the designer's contact phone number.
func (d *Designer) Phone() string { return d.phone }

func (d *Designer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Designer) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	d.organizationID = id
	return nil
}

func (d *Designer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}
