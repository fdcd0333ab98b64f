package services

import (
	"log/slog"
	"time"
)

// EventPublisher publishes change events after successful mutations.
// It is optional: services built with a nil publisher skip publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// Event is the payload of a change event.
type Event struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

const (
	eventCreated = "created"
	eventUpdated = "updated"
	eventDeleted = "deleted"
)

// publish never fails the caller; broker problems are only logged.
func publish(p EventPublisher, resource, action, id string, data any) {
	if p == nil {
		return
	}
	routingKey := resource + "." + action
	evt := Event{
		Type:       routingKey,
		Resource:   resource,
		ID:         id,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
	if err := p.Publish(routingKey, evt); err != nil {
		slog.Warn("failed to publish change event", "routing_key", routingKey, "id", id, "error", err)
	}
}
