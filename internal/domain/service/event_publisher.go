package service

import (
	"context"
)

// SendRequestEvent is one queued fan-out request, carried over Pub/Sub to the
// push worker. Category is optional and defaults to "general" downstream.
type SendRequestEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Category  string `json:"category,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
type EventPublisher interface {
	// PublishSendRequest publishes a fan-out request for async processing.
	PublishSendRequest(ctx context.Context, event *SendRequestEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
