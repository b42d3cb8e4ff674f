// Package event publishes storefront activity events to Kafka. Publishing is
// fire-and-forget: a broker outage must never fail a cart or login request.
package event

import (
	"context"
	"log/slog"

	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/kafka"
	"github.com/PrajwalKamdi/Women-Empower-sub000/pkg/logger"
)

// Activity event types.
const (
	TypeCartItemAdded       = "cart.item_added"
	TypeCartItemUpdated     = "cart.item_updated"
	TypeCartItemRemoved     = "cart.item_removed"
	TypeWishlistItemAdded   = "wishlist.item_added"
	TypeWishlistItemRemoved = "wishlist.item_removed"
	TypeUserLoggedIn        = "user.logged_in"
	TypeUserLoggedOut       = "user.logged_out"
)

// Source identifies this service in event envelopes.
const Source = "storefront"

// eventWriter is the producer surface the publisher needs.
type eventWriter interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// ActivityPublisher emits user-activity events on a single topic.
type ActivityPublisher struct {
	writer eventWriter
	topic  string
	logger *slog.Logger
}

// NewActivityPublisher creates a publisher. A nil writer disables publishing,
// which keeps local development free of a Kafka dependency.
func NewActivityPublisher(writer eventWriter, topic string, log *slog.Logger) *ActivityPublisher {
	return &ActivityPublisher{
		writer: writer,
		topic:  topic,
		logger: log,
	}
}

// Emit publishes one activity event keyed by user id. Failures are logged
// and dropped.
func (p *ActivityPublisher) Emit(ctx context.Context, eventType, userID string, data any) {
	if p == nil || p.writer == nil {
		return
	}

	evt, err := kafka.NewEvent(eventType, userID, "user", Source, data)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to build activity event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
		return
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		evt.WithCorrelationID(cid)
	}

	if err := p.writer.Publish(ctx, p.topic, evt); err != nil {
		p.logger.WarnContext(ctx, "failed to publish activity event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
	}
}
