package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for tenants.
type OrganizationRepository interface {
	// Add persists a new organization.
	Add(ctx context.Context, aggregate *organization.Organization) error

	// Update persists changes to an existing organization.
	Update(ctx context.Context, aggregate *organization.Organization) error

	// Get retrieves an organization by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error)
}
