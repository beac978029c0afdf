// Package impl contains the implementation of the application's business logic.
package impl

import (
	"fmt"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"
)

// timeDisplayFormat is how scheduled times appear in notification messages.
const timeDisplayFormat = "Jan 2, 2006 3:04 PM"

// newOutboxEvent builds the queued notification for an appointment mutation.
// The message templates match what clients display verbatim.
func newOutboxEvent(category entity.NotificationCategory, clientName string, scheduledAt time.Time) *entity.OutboxEvent {
	displayTime := scheduledAt.Format(timeDisplayFormat)

	var message string
	switch category {
	case entity.NotificationCategoryCreated:
		message = fmt.Sprintf("Appointment scheduled for %s on %s.", clientName, displayTime)
	case entity.NotificationCategoryUpdated:
		message = fmt.Sprintf("%s's appointment updated to %s.", clientName, displayTime)
	case entity.NotificationCategoryDeleted:
		message = fmt.Sprintf("Appointment with %s has been removed.", clientName)
	case entity.NotificationCategoryFinished:
		message = fmt.Sprintf("Appointment with %s on %s has finished.", clientName, displayTime)
	}

	return &entity.OutboxEvent{
		Category: category,
		Title:    category.Title(),
		Message:  message,
	}
}
