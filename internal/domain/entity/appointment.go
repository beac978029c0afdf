// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus describes the lifecycle state of an appointment.
type AppointmentStatus string

const (
	// AppointmentStatusActive is the default state of a scheduled appointment.
	AppointmentStatusActive AppointmentStatus = "active"
	// AppointmentStatusDone marks an appointment the owner completed manually.
	AppointmentStatusDone AppointmentStatus = "done"
	// AppointmentStatusCancelled marks an appointment the owner cancelled.
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusActive, AppointmentStatusDone, AppointmentStatusCancelled:
		return true
	default:
		return false
	}
}

// Appointment represents a single client booking.
//
// Appointments are not scoped to an owner account: every authenticated client
// sees the same collection. That matches the observed behavior of the system
// this replaces and is tracked as a known data-isolation gap.
type Appointment struct {
	ID          uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the appointment.
	ClientName  string            `json:"client_name"`  // The client's display name. Never empty.
	Phone       string            `json:"phone"`        // The client's phone number, fixed prefix and exact length.
	ScheduledAt time.Time         `json:"scheduled_at"` // When the appointment takes place. Once past, the record is eligible for expiry.
	Status      AppointmentStatus `json:"status"`       // Lifecycle state, defaults to active.
	CreatedAt   time.Time         `json:"created_at"`   // Timestamp of when this record was created.
	UpdatedAt   time.Time         `json:"updated_at"`   // Timestamp of the last modification.
}

// Expired reports whether the appointment's scheduled time is strictly in the past.
func (a *Appointment) Expired(now time.Time) bool {
	return a.ScheduledAt.Before(now)
}
