// Package rabbitmq publishes domain events to a RabbitMQ topic exchange.
// Events are advisory: command handlers never fail because a publish did,
// so the publisher logs and swallows broker errors behind the port.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"opsboard/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultExchange = "opsboard.events"

// EventPublisher implements ports.EventPublisher over an AMQP channel.
// Routing keys follow "<entity>.<action>" (e.g. "pickup.completed") so
// consumers can bind to exactly the slice of events they care about.
type EventPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *slog.Logger
}

// eventEnvelope is the wire form of a domain event.
type eventEnvelope struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organizationId"`
	EntityType     string    `json:"entityType"`
	EntityID       string    `json:"entityId"`
	Action         string    `json:"action"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// NewEventPublisher dials the broker, opens a channel and declares the
// events exchange. The exchange is durable and survives broker restarts.
func NewEventPublisher(url string, logger *slog.Logger) (*EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(defaultExchange, "topic", true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &EventPublisher{
		conn:     conn,
		ch:       ch,
		exchange: defaultExchange,
		logger:   logger.With("component", "event_publisher"),
	}, nil
}

// Publish sends one domain event. A closed connection or marshal failure is
// logged and reported to the caller, which is expected to ignore it.
func (p *EventPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p.conn.IsClosed() {
		p.logger.ErrorContext(ctx, "Event dropped, broker connection closed",
			"entityType", event.EntityType, "action", event.Action)
		return fmt.Errorf("rabbitmq: connection closed")
	}

	body, err := json.Marshal(eventEnvelope{
		ID:             event.ID.String(),
		OrganizationID: event.OrganizationID.String(),
		EntityType:     event.EntityType,
		EntityID:       event.EntityID.String(),
		Action:         event.Action,
		OccurredAt:     event.OccurredAt,
	})
	if err != nil {
		return err
	}

	routingKey := fmt.Sprintf("%s.%s", event.EntityType, event.Action)
	err = p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "Event publish failed",
			"routingKey", routingKey, "error", err)
		return err
	}

	return nil
}

// Close releases the channel and connection.
func (p *EventPublisher) Close() error {
	if p.ch != nil && !p.ch.IsClosed() {
		if err := p.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if p.conn != nil && !p.conn.IsClosed() {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}
