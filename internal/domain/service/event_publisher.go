package service

import (
	"context"
	"time"
)

// EventType names a domain event published after a committed change.
type EventType string

const (
	EventReviewCreated       EventType = "review.created"
	EventReviewDeleted       EventType = "review.deleted"
	EventMessageSent         EventType = "message.sent"
	EventProfileDeleted      EventType = "profile.deleted"
	EventNotificationCreated EventType = "notification.created"
)

// DomainEvent is the envelope published to the event bus.
type DomainEvent struct {
	ID         string            `json:"id"`
	RequestID  string            `json:"request_id,omitempty"` // For distributed tracing
	Type       EventType         `json:"type"`
	ProfileID  int64             `json:"profile_id"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a domain event. Callers treat failures as best-effort.
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
