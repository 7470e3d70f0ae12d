package roster

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

// ErrSourceIsNotConstructed is returned when a Source instance was not
// created through NewSource or RestoreSource.
var ErrSourceIsNotConstructed = errors.New("Source must be created via NewSource or RestoreSource")

// Source is the manufacturer or supplier location an order is collected
// from.
type Source struct {
	id             kernel.UUID
	organizationID kernel.UUID
	name           string
	address        string
	phoneNumber    string
	mainContact    string

	guard guard.ConstructorGuard
}

// NewSource creates a roster source.
func NewSource(id, organizationID kernel.UUID, name, address, phoneNumber, mainContact string) (*Source, error) {
	s := &Source{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setOrganizationID(organizationID),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	s.address = address
	s.phoneNumber = phoneNumber
	s.mainContact = mainContact
	return s, nil
}

// RestoreSource reconstructs a source from persistence.
func RestoreSource(id, organizationID kernel.UUID, name, address, phoneNumber, mainContact string) (*Source, error) {
	return NewSource(id, organizationID, name, address, phoneNumber, mainContact)
}

// Validate ensures the Source was created through a constructor.
func (s *Source) Validate() error {
	if s == nil {
		return ErrSourceIsNotConstructed
	}
	return s.guard.Validate(ErrSourceIsNotConstructed)
}

// ID returns the source's unique identifier.
func (s *Source) ID() kernel.UUID { return s.id }

// OrganizationID returns the owning organization.
func (s *Source) OrganizationID() kernel.UUID { return s.organizationID }

// Name returns the source's display name.
func (s *Source) Name() string { return s.name }

// Address returns the collection address.
func (s *Source) Address() string { return s.address }

// PhoneNumber returns the source's contact phone number.
func (s *Source) PhoneNumber() string { return s.phoneNumber }

// MainContact returns the primary contact person at the source.
func (s *Source) MainContact() string { return s.mainContact }

func (s *Source) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Source) setOrganizationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}
	s.organizationID = id
	return nil
}

func (s *Source) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}
