package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCategory labels the appointment mutation a notification describes.
type NotificationCategory string

const (
	// NotificationCategoryCreated is emitted when an appointment is created.
	NotificationCategoryCreated NotificationCategory = "created"
	// NotificationCategoryUpdated is emitted when an appointment is edited.
	NotificationCategoryUpdated NotificationCategory = "updated"
	// NotificationCategoryDeleted is emitted when an appointment is deleted by the user.
	NotificationCategoryDeleted NotificationCategory = "deleted"
	// NotificationCategoryFinished is emitted when the reconciler removes an expired appointment.
	NotificationCategoryFinished NotificationCategory = "finished"
)

// Title returns the human-readable heading for the category.
func (c NotificationCategory) Title() string {
	switch c {
	case NotificationCategoryCreated:
		return "New Appointment Created"
	case NotificationCategoryUpdated:
		return "Appointment Updated"
	case NotificationCategoryDeleted:
		return "Appointment Deleted"
	case NotificationCategoryFinished:
		return "Appointment Finished"
	default:
		return "Notification"
	}
}

// Notification is a human-readable event record produced as a side effect of
// an appointment mutation. It carries no reference back to the appointment;
// linkage is by message text only.
type Notification struct {
	ID        uuid.UUID            `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	Category  NotificationCategory `json:"category"`   // Mutation category, mapped to a display color by clients.
	Title     string               `json:"title"`      // Category heading shown in the notification list.
	Message   string               `json:"message"`    // Free-text description including the client name and time.
	CreatedAt time.Time            `json:"created_at"` // Timestamp of when the event was recorded.
}

// OutboxEvent is a queued notification side effect. It is written in the same
// transaction as the appointment mutation that caused it and drained by the
// dispatcher, so the primary write and its notification either both eventually
// complete or the failure stays visible in the queue.
type OutboxEvent struct {
	ID           uuid.UUID            `json:"id"`
	Category     NotificationCategory `json:"category"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	AttemptCount int                  `json:"attempt_count"` // Number of failed delivery attempts so far.
	LastError    string               `json:"last_error"`    // Error from the most recent failed attempt.
	PublishedAt  *time.Time           `json:"published_at"`  // Set once the event has been delivered.
	CreatedAt    time.Time            `json:"created_at"`
}
