package repository

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository defines the interface for the queued notification side effects.
type OutboxRepository interface {
	// Enqueue persists a new outbox event. Callers enqueue through the
	// transaction that performs the primary mutation so both commit together.
	Enqueue(ctx context.Context, event *entity.OutboxEvent) error

	// FetchUnpublished retrieves up to limit undelivered events below the
	// attempt cap, oldest first.
	FetchUnpublished(ctx context.Context, limit, maxAttempts int) ([]*entity.OutboxEvent, error)

	// MarkPublished stamps an event as delivered.
	MarkPublished(ctx context.Context, id uuid.UUID) error

	// MarkFailed records a failed delivery attempt and its error.
	MarkFailed(ctx context.Context, id uuid.UUID, deliveryErr error) error
}
