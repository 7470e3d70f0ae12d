package ports

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/pickup"
)

// PickupRepository defines the persistence contract for pickup aggregates.
type PickupRepository interface {
	// Add persists a new pickup aggregate to storage.
	Add(ctx context.Context, aggregate *pickup.Pickup) error

	// Update persists changes to an existing pickup aggregate. The write is
	// guarded by the aggregate's version: if the stored version differs, the
	// update fails with a version conflict and nothing is written.
	Update(ctx context.Context, aggregate *pickup.Pickup) error

	// Get retrieves a pickup by its identifier within the organization.
	Get(ctx context.Context, organizationID, id kernel.UUID) (*pickup.Pickup, error)

	// GetByIDs retrieves the pickups matching the given identifiers within
	// the organization. Unresolved identifiers are absent from the result.
	GetByIDs(ctx context.Context, organizationID kernel.UUID, ids []kernel.UUID) ([]*pickup.Pickup, error)

	// GetAll retrieves every pickup in the organization.
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*pickup.Pickup, error)

	// GetActiveByOrder retrieves the non-archived pickups that hold the
	// given order. With the double-booking rule intact the result has at
	// most one element.
	GetActiveByOrder(ctx context.Context, organizationID, orderID kernel.UUID) ([]*pickup.Pickup, error)

	// GetCompletedBefore retrieves completed pickups, across organizations,
	// whose scheduled date is older than the cutoff. Used by the archival
	// job.
	GetCompletedBefore(ctx context.Context, cutoff time.Time) ([]*pickup.Pickup, error)

	// Delete removes a pickup from storage. The caller releases the claims
	// of the pickup's orders first.
	Delete(ctx context.Context, organizationID, id kernel.UUID) error
}
