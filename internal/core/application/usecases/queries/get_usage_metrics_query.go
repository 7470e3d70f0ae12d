package queries

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetUsageMetricsQueryIsNotConstructed = errors.New(
	"GetUsageMetricsQuery must be created via NewGetUsageMetricsQuery constructor",
)

// GetUsageMetricsQuery reports an organization's current usage against its
// plan limits. Backs the billing page and the quota warnings in the UI.
type GetUsageMetricsQuery struct {
	organizationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUsageMetricsQuery creates a usage metrics query.
func NewGetUsageMetricsQuery(organizationID kernel.UUID) (GetUsageMetricsQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetUsageMetricsQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetUsageMetricsQuery{
		organizationID: organizationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsageMetricsQuery) Validate() error {
	return q.guard.Validate(ErrGetUsageMetricsQueryIsNotConstructed)
}

// OrganizationID returns the tenant being measured.
func (q GetUsageMetricsQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// GetUsageMetricsQueryResponse is the usage read model. Limits of -1 mean
// unlimited. Pickup counts exclude archived runs; archival is how completed
// runs stop counting against the plan.
type GetUsageMetricsQueryResponse struct {
	Plan        string
	OrderCount  int
	OrderLimit  int
	PickupCount int
	PickupLimit int
	ReturnCount int
}
