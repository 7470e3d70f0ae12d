// Package ports defines the contracts between the application core and
// infrastructure adapters. Every repository method is scoped to an
// organization; an entity belonging to another tenant behaves exactly like
// one that does not exist.
package ports

import (
	"context"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The write is
	// guarded by the aggregate's version: if the stored version differs, the
	// update fails with a version conflict and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier within the organization.
	Get(ctx context.Context, organizationID, id kernel.UUID) (*order.Order, error)

	// GetByIDs retrieves the orders matching the given identifiers within
	// the organization. Identifiers that do not resolve are simply absent
	// from the result; callers that need all of them must compare lengths.
	GetByIDs(ctx context.Context, organizationID kernel.UUID, ids []kernel.UUID) ([]*order.Order, error)

	// GetAll retrieves every order in the organization.
	GetAll(ctx context.Context, organizationID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order from storage. The caller is responsible for
	// checking that no active pickup or return still references it.
	Delete(ctx context.Context, organizationID, id kernel.UUID) error
}
