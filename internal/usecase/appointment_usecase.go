// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AppointmentInput defines the data required to create or edit an appointment.
type AppointmentInput struct {
	ClientName  string
	Phone       string
	ScheduledAt time.Time

	// Status is optional. Empty means active on create and keep-current on update.
	Status string

	// Confirmed acknowledges scheduling at or past start-of-tomorrow.
	// Without it such writes are rejected with a confirmation-required error.
	Confirmed bool
}

// AppointmentUsecase defines the interface for appointment lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AppointmentUsecase interface {
	// List retrieves all appointments ascending by scheduled time.
	List(ctx context.Context) ([]*entity.Appointment, error)

	// GetOne retrieves a single appointment by ID.
	GetOne(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// Create validates and persists a new appointment, queueing its notification.
	Create(ctx context.Context, input AppointmentInput) (*entity.Appointment, error)

	// Update validates and persists changes to an existing appointment, queueing its notification.
	Update(ctx context.Context, id uuid.UUID, input AppointmentInput) (*entity.Appointment, error)

	// Delete removes an appointment, queueing its notification. Deleting a
	// missing id succeeds silently.
	Delete(ctx context.Context, id uuid.UUID) error
}
