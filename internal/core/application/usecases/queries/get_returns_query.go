package queries

import (
	"errors"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetReturnsQueryIsNotConstructed = errors.New(
	"GetReturnsQuery must be created via NewGetReturnsQuery constructor",
)

// GetReturnsQuery retrieves all return runs belonging to one organization.
type GetReturnsQuery struct {
	organizationID  kernel.UUID
	includeArchived bool

	guard guard.ConstructorGuard
}

// NewGetReturnsQuery creates an org-scoped return listing query.
func NewGetReturnsQuery(organizationID kernel.UUID, includeArchived bool) (GetReturnsQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetReturnsQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetReturnsQuery{
		organizationID:  organizationID,
		includeArchived: includeArchived,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnsQueryIsNotConstructed)
}

// OrganizationID returns the tenant whose returns are listed.
func (q GetReturnsQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// IncludeArchived reports whether archived runs appear in the listing.
func (q GetReturnsQuery) IncludeArchived() bool {
	return q.includeArchived
}

// GetReturnsQueryResponse is the return-run read model. DriverID and
// DriverName are nil/empty for unassigned runs.
type GetReturnsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	DriverID      *kernel.UUID
	DriverName    string
	ScheduledDate time.Time
	Status        string
	Priority      string
	OrderIDs      []kernel.UUID
	Version       int
}
