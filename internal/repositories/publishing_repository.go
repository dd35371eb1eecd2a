package repositories

import (
	"context"
	"log/slog"

	"katalog/internal/models"
)

// EventPublisher delivers catalog events to interested consumers.
type EventPublisher interface {
	PublishProductEvent(ctx context.Context, event models.ProductEvent) error
}

// PublishingRepository decorates a Repository and publishes an event after
// every successful mutation. A failed publish is logged and does not fail
// the store call.
type PublishingRepository[T any, PT EntityPointer[T]] struct {
	Repository[T]
	publisher EventPublisher
	resource  string
	logger    *slog.Logger
}

// NewPublishingRepository wraps next so that mutations of resource are published.
func NewPublishingRepository[T any, PT EntityPointer[T]](next Repository[T], publisher EventPublisher, resource string, logger *slog.Logger) *PublishingRepository[T, PT] {
	if logger == nil {
		logger = slog.Default()
	}
	return &PublishingRepository[T, PT]{
		Repository: next,
		publisher:  publisher,
		resource:   resource,
		logger:     logger,
	}
}

// Create stores entity and publishes a created event.
func (r *PublishingRepository[T, PT]) Create(ctx context.Context, entity *T) error {
	if err := r.Repository.Create(ctx, entity); err != nil {
		return err
	}
	r.publish(ctx, models.EventCreated, PT(entity).EntityID())
	return nil
}

// Update replaces entity and publishes an updated event.
func (r *PublishingRepository[T, PT]) Update(ctx context.Context, entity *T) error {
	if err := r.Repository.Update(ctx, entity); err != nil {
		return err
	}
	r.publish(ctx, models.EventUpdated, PT(entity).EntityID())
	return nil
}

// Delete removes entity and publishes a deleted event.
func (r *PublishingRepository[T, PT]) Delete(ctx context.Context, entity *T) error {
	if err := r.Repository.Delete(ctx, entity); err != nil {
		return err
	}
	r.publish(ctx, models.EventDeleted, PT(entity).EntityID())
	return nil
}

func (r *PublishingRepository[T, PT]) publish(ctx context.Context, eventType models.EventType, id int) {
	event := models.NewProductEvent(eventType, r.resource, id)
	if err := r.publisher.PublishProductEvent(ctx, event); err != nil {
		r.logger.WarnContext(ctx, "failed to publish catalog event",
			slog.String("routing_key", event.RoutingKey()),
			slog.Int("entity_id", id),
			slog.String("error", err.Error()),
		)
	}
}
