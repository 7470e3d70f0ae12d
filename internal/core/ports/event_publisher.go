package ports

import (
	"context"
	"time"

	"opsboard/internal/core/domain/model/kernel"
)

// DomainEvent describes a state change worth announcing outside the
// process. Events are published after the owning transaction commits, so a
// consumer never observes an event for a rolled-back change.
type DomainEvent struct {
	ID             kernel.UUID
	OrganizationID kernel.UUID
	EntityType     string
	EntityID       kernel.UUID
	Action         string
	OccurredAt     time.Time
}

// EventPublisher delivers domain events to interested consumers. A publish
// failure must not fail the command that produced the event; callers log
// and continue.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}
