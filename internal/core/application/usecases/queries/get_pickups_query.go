package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetPickupsQueryIsNotConstructed = errors.New(
	"GetPickupsQuery must be created via NewGetPickupsQuery constructor",
)

// GetPickupsQuery retrieves all pickup runs belonging to one organization.
// Archived runs are included only when requested; day-to-day board views
// want the active set.
type GetPickupsQuery struct {
	organizationID  kernel.UUID
	includeArchived bool

	guard guard.ConstructorGuard
}

// NewGetPickupsQuery creates an org-scoped pickup listing query.
func NewGetPickupsQuery(organizationID kernel.UUID, includeArchived bool) (GetPickupsQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetPickupsQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetPickupsQuery{
		organizationID:  organizationID,
		includeArchived: includeArchived,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupsQueryIsNotConstructed)
}

// OrganizationID returns the tenant whose pickups are listed.
func (q GetPickupsQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// IncludeArchived reports whether archived runs appear in the listing.
func (q GetPickupsQuery) IncludeArchived() bool {
	return q.includeArchived
}

// GetPickupsQueryResponse is the pickup read model. DriverName is resolved
// in the same query so board views need no follow-up lookups.
type GetPickupsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	DriverID      kernel.UUID
	DriverName    string
	ScheduledDate time.Time
	Status        string
	Priority      string
	OrderIDs      []kernel.UUID
	Version       int
}
