package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType names the mutation a ProductEvent reports.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// ProductEvent is published after a catalog record has been mutated.
type ProductEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Resource   string    `json:"resource"`
	EntityID   int       `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewProductEvent creates an event with a fresh ID and the current time.
func NewProductEvent(eventType EventType, resource string, entityID int) ProductEvent {
	return ProductEvent{
		ID:         uuid.New().String(),
		Type:       eventType,
		Resource:   resource,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey returns the AMQP routing key for the event, e.g. "products.created".
func (e ProductEvent) RoutingKey() string {
	return e.Resource + "." + string(e.Type)
}
