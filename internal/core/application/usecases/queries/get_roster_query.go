package queries

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetRosterQueryIsNotConstructed = errors.New(
	"GetRosterQuery must be created via NewGetRosterQuery constructor",
)

// GetRosterQuery retrieves an organization's reference data in one shot:
// drivers, designers and sources. Intake forms need all three to populate
// their dropdowns, so the read model bundles them.
type GetRosterQuery struct {
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRosterQuery creates an org-scoped roster query.
func NewGetRosterQuery(organizationID kernel.UUID) (GetRosterQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetRosterQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetRosterQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetRosterQueryIsNotConstructed)
}

// OrganizationID returns the tenant whose roster is listed.
func (q GetRosterQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// RosterDriver is the driver entry in the roster read model.
type RosterDriver struct {
	ID      kernel.UUID
	Name    string
	Email   string
	Phone   string
	Vehicle string
}

// RosterDesigner is the designer entry in the roster read model.
type RosterDesigner struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// RosterSource is the source (vendor/workroom) entry in the roster read model.
type RosterSource struct {
	ID          kernel.UUID
	Name        string
	Address     string
	PhoneNumber string
	MainContact string
}

// GetRosterQueryResponse bundles the three roster listings.
type GetRosterQueryResponse struct {
	Drivers   []RosterDriver
	Designers []RosterDesigner
	Sources   []RosterSource
}
