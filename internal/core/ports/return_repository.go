package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return aggregate to storage.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists changes to an existing return aggregate. The write is
	// guarded by the aggregate's version: if the stored version differs, the
	// update fails with a version conflict and nothing is written.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return by its identifier within the organization.
	Get(ctx context.Context, organizationID, id kernel.UUID) (*returns.Return, error)

	// GetAll retrieves every return in the organization.
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*returns.Return, error)

	// GetActiveByOrder retrieves the non-archived returns that reference the
	// given order.
	GetActiveByOrder(ctx context.Context, organizationID, orderID kernel.UUID) ([]*returns.Return, error)

	// Delete removes a return from storage.
	Delete(ctx context.Context, organizationID, id kernel.UUID) error
}
