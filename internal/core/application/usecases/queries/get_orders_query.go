// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases, bypassing the
// aggregates and reading straight from storage.
package queries

import (
	"errors"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/pkg/errs"
	"opsboard/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves all orders belonging to one organization.
// An optional status filter narrows the listing to a single fulfillment
// state; unassignedOnly restricts it to orders no pickup has claimed,
// which is what pickup intake forms want.
//
// Example:
//
//	query, err := queries.NewGetOrdersQuery(orgID, "pending", false)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	organizationID kernel.UUID
	statusFilter   string
	unassignedOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an org-scoped order listing query.
// statusFilter may be empty or any valid order status string.
func NewGetOrdersQuery(organizationID kernel.UUID, statusFilter string, unassignedOnly bool) (GetOrdersQuery, error) {
	if err := organizationID.Validate(); err != nil {
		return GetOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("organizationId", err)
	}

	return GetOrdersQuery{
		organizationID: organizationID,
		statusFilter:   statusFilter,
		unassignedOnly: unassignedOnly,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrganizationID returns the tenant whose orders are listed.
func (q GetOrdersQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// StatusFilter returns the requested status, or "" for no filtering.
func (q GetOrdersQuery) StatusFilter() string {
	return q.statusFilter
}

// UnassignedOnly reports whether the listing excludes claimed orders.
func (q GetOrdersQuery) UnassignedOnly() bool {
	return q.unassignedOnly
}

// GetOrdersQueryResponse is the order read model. Status and priority are
// carried as their string representations; cost is converted back to the
// domain value object so callers can render dollars without re-deriving it.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	JobName         string
	JobNumber       string
	OrderNumber     string
	PurchaseOrder   string
	DesignerID      kernel.UUID
	SourceID        kernel.UUID
	DestinationName string
	Cost            kernel.Cost
	Status          string
	Priority        string
	PickupID        *kernel.UUID
	Version         int
}
