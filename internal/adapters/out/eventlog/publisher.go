// Package eventlog is the no-broker event publisher: domain events go to
// the structured log instead of a queue. Used in development and in
// deployments that have not configured RabbitMQ.
package eventlog

import (
	"context"
	"log/slog"

	"opsboard/internal/core/ports"
)

// Publisher implements ports.EventPublisher by logging each event.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a log-backed event publisher.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

// Publish records the event at info level. Never fails.
func (p *Publisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	p.logger.InfoContext(ctx, "Domain event",
		"eventId", event.ID.String(),
		"organizationId", event.OrganizationID.String(),
		"entityType", event.EntityType,
		"entityId", event.EntityID.String(),
		"action", event.Action,
		"occurredAt", event.OccurredAt,
	)
	return nil
}
