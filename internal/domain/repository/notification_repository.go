package repository

import (
	"context"
	"errors"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the notification feed.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListOrdered retrieves all notifications, newest first.
	ListOrdered(ctx context.Context) ([]*entity.Notification, error)

	// Delete removes a single notification.
	// Returns ErrNotificationNotFound when no record exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every notification record and reports the count removed.
	DeleteAll(ctx context.Context) (int64, error)
}
