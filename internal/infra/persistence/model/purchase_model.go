package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table.
type PurchaseModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Plan        string    `gorm:"type:varchar(50);not null"`
	Price       string    `gorm:"type:varchar(20);not null"`
	PurchasedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}

// HelpRequestModel mirrors the 'help_requests' table.
type HelpRequestModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	Subject   string     `gorm:"type:varchar(200);not null"`
	Message   string     `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HelpRequestModel) TableName() string {
	return "help_requests"
}
