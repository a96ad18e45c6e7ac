// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// EventGoalCompleted is emitted once, when a goal's saved amount first reaches its target.
const EventGoalCompleted = "goal.completed"

// DomainEvent is a notification about something that happened in the domain.
type DomainEvent struct {
	Type       string
	OccurredAt time.Time
	Payload    any
}

// EventPublisher defines the interface for publishing domain events to a broker.
type EventPublisher interface {
	// Publish sends the event. Implementations must not block longer than the context allows.
	Publish(ctx context.Context, event DomainEvent) error
}
