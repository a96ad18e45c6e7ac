// Package events publishes domain events to a message broker.
package events

import (
	"context"
	"log/slog"

	"github.com/finance-tracker/young-finance/internal/application/adapter"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that only logs at debug level.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish logs the event and returns nil.
func (NoopPublisher) Publish(ctx context.Context, event adapter.DomainEvent) error {
	slog.DebugContext(ctx, "Domain event dropped, publishing disabled", "type", event.Type)
	return nil
}

// Close is a no-op.
func (NoopPublisher) Close() error {
	return nil
}
