package commands

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/kernel"
	"opsboard/internal/core/ports"
)

// Entity type names used in published domain events.
const (
	EntityTypeOrder  = "order"
	EntityTypePickup = "pickup"
	EntityTypeReturn = "return"
)

// publishEvent announces a committed state change. Publishing happens after
// the transaction commits and never fails the command; the publisher is
// responsible for its own fallback and logging.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, organizationID kernel.UUID,
	entityType string, entityID kernel.UUID, action string,
) {
	if publisher == nil {
		return
	}

	_ = publisher.Publish(ctx, ports.DomainEvent{
		ID:             kernel.NewUUID(),
		OrganizationID: organizationID,
		EntityType:     entityType,
		EntityID:       entityID,
		Action:         action,
		OccurredAt:     time.Now().UTC(),
	})
}
