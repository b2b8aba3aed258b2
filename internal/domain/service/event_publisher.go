package service

import (
	"context"
	"time"
)

// DomainEvent is published after a lifecycle or moderation decision commits.
type DomainEvent struct {
	ID          string            `json:"id"`
	Type        string            `json:"type"`
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	AggregateID string            `json:"aggregate_id"`
	ActorID     string            `json:"actor_id,omitempty"`
	OccurredAt  time.Time         `json:"occurred_at"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
