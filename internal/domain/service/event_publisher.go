package service

import (
	"context"
	"time"
)

// AppointmentEvent is the message published when an appointment mutates.
// Downstream consumers (analytics, integrations) receive it asynchronously.
type AppointmentEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	Category  string    `json:"category"` // created, updated, deleted, finished
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAppointmentEvent publishes an appointment event for async processing
	PublishAppointmentEvent(ctx context.Context, event *AppointmentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
