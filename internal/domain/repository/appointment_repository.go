// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/duniya2no/ReMeet/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the interface for appointment-related database operations.
type AppointmentRepository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, appointment *entity.Appointment) error

	// FindByID retrieves an appointment by its unique ID.
	// Returns ErrAppointmentNotFound when no record exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)

	// ListOrdered retrieves all appointments ascending by scheduled time.
	// This is the point-in-time read backing both the live feed and the
	// expiry reconciler.
	ListOrdered(ctx context.Context) ([]*entity.Appointment, error)

	// Update persists changes to an existing appointment.
	// Returns ErrAppointmentNotFound when no record exists.
	Update(ctx context.Context, appointment *entity.Appointment) error

	// Delete removes an appointment. Deleting an id that is already gone is
	// not an error; the bool reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
