package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrCreateDesignerCommandIsNotConstructed is returned when a
// CreateDesignerCommand was not built via its constructor.
var ErrCreateDesignerCommandIsNotConstructed = errors.New(
	"CreateDesignerCommand must be created via NewCreateDesignerCommand constructor",
)

// CreateDesignerCommand represents a request to add a designer to the roster.
type CreateDesignerCommand struct { //nolint:recvcheck //using for validation
	designerID     kernel.UUID
	organizationID kernel.UUID
	name           string
	email          string
	phone          string

	guard guard.ConstructorGuard
}

// NewCreateDesignerCommand creates a command to add a roster designer.
func NewCreateDesignerCommand(
	designerID, organizationID kernel.UUID, name, email, phone string,
) (CreateDesignerCommand, error) {
	cmd := CreateDesignerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDesignerID(designerID),
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
	); err != nil {
		return CreateDesignerCommand{}, err
	}

	cmd.email = email
	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDesignerCommand) Validate() error {
	return c.guard.Validate(ErrCreateDesignerCommandIsNotConstructed)
}

// DesignerID returns the identifier for the new designer.
func (c CreateDesignerCommand) DesignerID() kernel.UUID { return c.designerID }

// OrganizationID returns the owning organization.
func (c CreateDesignerCommand) OrganizationID() kernel.UUID { return c.organizationID }

// Name returns the designer's display name.
func (c CreateDesignerCommand) Name() string { return c.name }

// Email returns the designer's contact email.
func (c CreateDesignerCommand) Email() string { return c.email }

// Phone returns the designer's contact phone number.
func (c CreateDesignerCommand) Phone() string { return c.phone }

func (c *CreateDesignerCommand) setDesignerID(designerID kernel.UUID) error {
	if err := designerID.Validate(); err != nil {
		return err
	}

	c.designerID = designerID
	return nil
}

func (c *CreateDesignerCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateDesignerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
