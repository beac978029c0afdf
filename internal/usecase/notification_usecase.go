package usecase

import (
	"context"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for the notification feed.
type NotificationUsecase interface {
	// List retrieves all feed notifications, newest first.
	List(ctx context.Context) ([]*entity.Notification, error)

	// Delete removes a single notification from the feed.
	Delete(ctx context.Context, id uuid.UUID) error

	// Clear removes every notification and reports how many were removed.
	Clear(ctx context.Context) (int64, error)
}

// OutboxDispatcher defines the interface for draining queued notification events.
type OutboxDispatcher interface {
	// DispatchPending delivers queued outbox events: each one becomes a feed
	// record, an optional push notification, and a pub/sub event. It returns
	// the number of events successfully published. Delivery failures are
	// recorded on the event and retried on later passes up to the attempt cap.
	DispatchPending(ctx context.Context) (int, error)
}
