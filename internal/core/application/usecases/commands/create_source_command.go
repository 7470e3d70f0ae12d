package commands

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrCreateSourceCommandIsNotConstructed is returned when a
// CreateSourceCommand was not built via its constructor.
var ErrCreateSourceCommandIsNotConstructed = errors.New(
	"CreateSourceCommand must be created via NewCreateSourceCommand constructor",
)

// CreateSourceCommand represents a request to add a source to the roster.
type CreateSourceCommand struct { //nolint:recvcheck //using for validation
	sourceID       kernel.UUID
	organizationID kernel.UUID
	name           string
	address        string
	phoneNumber    string
	mainContact    string

	guard guard.ConstructorGuard
}

// NewCreateSourceCommand creates a command to add a roster source.
func NewCreateSourceCommand(
	sourceID, organizationID kernel.UUID, name, address, phoneNumber, mainContact string,
) (CreateSourceCommand, error) {
	cmd := CreateSourceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSourceID(sourceID),
		cmd.setOrganizationID(organizationID),
		cmd.setName(name),
	); err != nil {
		return CreateSourceCommand{}, err
	}

	cmd.address = address
	cmd.phoneNumber = phoneNumber
	cmd.mainContact = mainContact
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSourceCommand) Validate() error {
	return c.guard.Validate(ErrCreateSourceCommandIsNotConstructed)
}

// SourceID returns the identifier for the new source.
func (c CreateSourceCommand) SourceID() kernel.UUID { return c.sourceID }

// OrganizationID returns the owning organization.
func (c CreateSourceCommand) OrganizationID() kernel.UUID { return c.organizationID }

// Name returns the source's display name.
func (c CreateSourceCommand) Name() string { return c.name }

// Address returns the collection address.
func (c CreateSourceCommand) Address() string { return c.address }

// PhoneNumber returns the source's contact phone number.
func (c CreateSourceCommand) PhoneNumber() string { return c.phoneNumber }

// MainContact returns the primary contact person at the source.
func (c CreateSourceCommand) MainContact() string { return c.mainContact }

func (c *CreateSourceCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceID = sourceID
	return nil
}

func (c *CreateSourceCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateSourceCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
