package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	Name                 string    `gorm:"type:varchar(100)"`
	Phone                string    `gorm:"type:varchar(20)"`
	PhoneVerified        bool      `gorm:"not null;default:false"`
	BusinessType         string    `gorm:"type:varchar(50)"`
	ShopName             string    `gorm:"type:varchar(100)"`
	Address              string    `gorm:"type:text"`
	AvatarURL            string    `gorm:"type:text"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	DarkMode             bool      `gorm:"not null;default:false"`
	FCMToken             string    `gorm:"type:text"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// PhoneVerificationModel mirrors the 'phone_verifications' table.
// At most one pending challenge exists per user.
type PhoneVerificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PhoneVerificationModel) TableName() string {
	return "phone_verifications"
}
