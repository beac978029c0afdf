// Package model contains the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AppointmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ClientName  string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	ScheduledAt time.Time `gorm:"not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
