package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category  string    `gorm:"type:varchar(20);not null"`
	Title     string    `gorm:"type:varchar(100);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// OutboxEventModel mirrors the 'outbox_events' table holding queued
// notification side effects awaiting dispatch.
type OutboxEventModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Category     string    `gorm:"type:varchar(20);not null"`
	Title        string    `gorm:"type:varchar(100);not null"`
	Message      string    `gorm:"type:text;not null"`
	AttemptCount int       `gorm:"not null;default:0"`
	LastError    string    `gorm:"type:text"`
	PublishedAt  *time.Time `gorm:"index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OutboxEventModel) TableName() string {
	return "outbox_events"
}
